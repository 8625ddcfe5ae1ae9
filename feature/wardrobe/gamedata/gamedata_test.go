package gamedata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe-manager/core/fetch"
	"wardrobe-manager/feature/wardrobe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeGetter) Get(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	if !ok {
		return nil, &fetch.Error{URL: url, StatusCode: http.StatusNotFound}
	}
	return []byte(body), nil
}

const variables = "client.starting=Loading\n" +
	"flash.client.url=//images.habbo.com/gordon/PRODUCTION-202602031200-123456789/\n" +
	"flash.client.origin=popup\n"

func TestExtractBuildID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{"FlashLine", variables, "PRODUCTION-202602031200-123456789", true},
		{"ShortDate", "flash.client.url=https://x/PRODUCTION-20250101-123456789/", "PRODUCTION-20250101-123456789", true},
		{"Elsewhere", "other=PRODUCTION-202501011200-123456789", "PRODUCTION-202501011200-123456789", true},
		{"Missing", "flash.client.url=https://x/latest/", "", false},
		{"Garbage", "\x00\x01 not a config", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBuildID([]byte(tt.body))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Primary", func(t *testing.T) {
		g := &fakeGetter{bodies: map[string]string{"primary": variables}}
		r := NewVersionResolver(g, []string{"primary", "mirror"}, "", nil)
		assert.Equal(t, "PRODUCTION-202602031200-123456789", r.Resolve(ctx))
		assert.Equal(t, []string{"primary"}, g.calls)
	})

	t.Run("MirrorAfterFailure", func(t *testing.T) {
		g := &fakeGetter{bodies: map[string]string{"mirror": variables}}
		r := NewVersionResolver(g, []string{"primary", "mirror"}, "", nil)
		assert.Equal(t, "PRODUCTION-202602031200-123456789", r.Resolve(ctx))
		assert.Equal(t, []string{"primary", "mirror"}, g.calls)
	})

	t.Run("UnparsableBodyFallsBack", func(t *testing.T) {
		g := &fakeGetter{bodies: map[string]string{"primary": "<html>maintenance</html>", "mirror": "nothing here"}}
		r := NewVersionResolver(g, []string{"primary", "mirror"}, "", nil)
		assert.Equal(t, FallbackBuildID, r.Resolve(ctx))
	})

	t.Run("AllDownFallsBack", func(t *testing.T) {
		r := NewVersionResolver(&fakeGetter{}, []string{"primary", "mirror"}, "PRODUCTION-1-1", nil)
		assert.Equal(t, "PRODUCTION-1-1", r.Resolve(ctx))
		assert.Equal(t, "PRODUCTION-1-1", r.Fallback())
	})
}

func TestVersionResolver_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/down" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(variables))
	}))
	defer srv.Close()

	client := fetch.NewClient(fetch.Config{TimeoutSeconds: 2}, nil)
	r := NewVersionResolver(client, []string{srv.URL + "/down", srv.URL + "/up"}, "", nil)
	assert.Equal(t, "PRODUCTION-202602031200-123456789", r.Resolve(context.Background()))
}

func TestDocumentFetcher(t *testing.T) {
	ctx := context.Background()
	g := &fakeGetter{bodies: map[string]string{
		"https://images.example/gordon/flash-assets-B1/figuredata.xml": "<figuredata/>",
		"https://gamedata.example/furnidata": `{"roomitemtypes":{"furnitype":[]}}`,
		"https://gamedata.example/broken":    `{"roomitemtypes":`,
	}}

	f := NewDocumentFetcher(g, "https://images.example/gordon/flash-assets-{build}/figuredata.xml", "https://gamedata.example/furnidata")

	xmlText, err := f.FetchFigureDocument(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, "<figuredata/>", xmlText)

	doc, err := f.FetchMetadataDocument(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"roomitemtypes":{"furnitype":[]}}`, string(doc))

	_, err = f.FetchFigureDocument(ctx, "B2")
	var fe *fetch.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)

	broken := NewDocumentFetcher(g, "", "https://gamedata.example/broken")
	_, err = broken.FetchMetadataDocument(ctx)
	assert.True(t, models.IsParseError(err))
}

func TestDocumentFetcher_FigureURL(t *testing.T) {
	assert.Equal(t, "https://x/B1/figuredata.xml", NewDocumentFetcher(nil, "https://x/{build}/figuredata.xml", "").FigureURL("B1"))
	assert.Equal(t, "https://x/figuredata/B1", NewDocumentFetcher(nil, "https://x/figuredata/", "").FigureURL("B1"))
}
