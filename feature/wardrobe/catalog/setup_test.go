package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wardrobe-manager/core/cache"
	"wardrobe-manager/core/fetch"
	"wardrobe-manager/feature/wardrobe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ResolvesOverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/variables", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("flash.client.url=//images.test/gordon/" + liveBuild + "/\n"))
	})
	mux.HandleFunc("/gordon/"+liveBuild+"/figuredata.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(liveFigure))
	})
	mux.HandleFunc("/furnidata", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(liveMetadata))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := Config{
		VersionURL:       srv.URL + "/missing",
		VersionMirrorURL: srv.URL + "/variables",
		FigureDataURL:    srv.URL + "/gordon/{build}/figuredata.xml",
		FurniDataURL:     srv.URL + "/furnidata",
		ImagingURL:       "https://imaging.test/avatarimage",
		FallbackBuild:    fallbackBuild,
		CacheTTL:         time.Hour,
		FallbackTTL:      time.Minute,
	}
	getter := fetch.NewClient(fetch.Config{TimeoutSeconds: 5}, nil)
	agg := New(cfg, getter, cache.NewMemoryStore(), nil, nil)

	cat := agg.Catalog(context.Background())
	assert.Equal(t, models.SourceLive, cat.Source)
	assert.Equal(t, liveBuild, cat.BuildID)

	item := findItem(t, cat, "ha", 1001)
	assert.Equal(t, "Baseball Cap", item.ResolvedName)
	assert.Contains(t, item.ImageURL, "https://imaging.test/avatarimage?figure=ha-1001-1")
}

func TestNew_UnreachableFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := Config{
		VersionURL:    srv.URL + "/variables",
		FigureDataURL: srv.URL + "/{build}/figuredata.xml",
		FurniDataURL:  srv.URL + "/furnidata",
		CacheTTL:      time.Hour,
		FallbackTTL:   time.Minute,
	}
	agg := New(cfg, fetch.NewClient(fetch.Config{TimeoutSeconds: 5}, nil), cache.NewMemoryStore(), nil, nil)

	cat := agg.Catalog(context.Background())
	assert.Equal(t, models.SourceFallback, cat.Source)
	require.NotEmpty(t, cat.Categories)
	assert.Equal(t, fallbackBuild, cat.BuildID)
}
