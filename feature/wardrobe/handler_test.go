package wardrobe

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe-manager/core/loader"
	"wardrobe-manager/feature/wardrobe/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, src *fakeSource) *fiber.App {
	t.Helper()
	app := fiber.New()
	manager := loader.NewManager(zap.NewNop())
	manager.Register(NewFeature(src, nil, zap.NewNop()))
	require.NoError(t, manager.LoadAll(app))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandler_Categories(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	status, body := doRequest(t, app, http.MethodGet, "/wardrobe/categories?gender=M")
	require.Equal(t, http.StatusOK, status)
	var categories []models.Category
	require.NoError(t, json.Unmarshal(body, &categories))
	assert.Len(t, categories, 2)

	status, body = doRequest(t, app, http.MethodGet, "/wardrobe/categories?gender=Q")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "invalid gender")
}

func TestHandler_Category(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	status, body := doRequest(t, app, http.MethodGet, "/wardrobe/categories/ha")
	require.Equal(t, http.StatusOK, status)
	var category models.Category
	require.NoError(t, json.Unmarshal(body, &category))
	assert.Equal(t, "ha", category.Code)
	assert.Len(t, category.Items, 2)

	status, _ = doRequest(t, app, http.MethodGet, "/wardrobe/categories/zz")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/wardrobe/categories/lg?gender=M")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_PaletteAndNames(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	status, body := doRequest(t, app, http.MethodGet, "/wardrobe/categories/ha/palette")
	require.Equal(t, http.StatusOK, status)
	var palette models.Palette
	require.NoError(t, json.Unmarshal(body, &palette))
	assert.Equal(t, "3", palette.ID)

	status, body = doRequest(t, app, http.MethodGet, "/wardrobe/categories/ha/names?ids=3117,9999")
	require.Equal(t, http.StatusOK, status)
	var names []ItemName
	require.NoError(t, json.Unmarshal(body, &names))
	require.Len(t, names, 2)
	assert.Equal(t, "Royal Crown", names[0].Name)
	assert.Equal(t, NotAvailable, names[1].Name)

	status, _ = doRequest(t, app, http.MethodGet, "/wardrobe/categories/ha/names")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_StatsAndSearch(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	status, body := doRequest(t, app, http.MethodGet, "/wardrobe/stats")
	require.Equal(t, http.StatusOK, status)
	var stats Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 5, stats.TotalItems)

	status, body = doRequest(t, app, http.MethodGet, "/wardrobe/search?q=crown&limit=5")
	require.Equal(t, http.StatusOK, status)
	var results []SearchResult
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 1)
	assert.Equal(t, 3117, results[0].Item.ItemID)

	status, _ = doRequest(t, app, http.MethodGet, "/wardrobe/search")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_ImageURL(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	tests := []struct {
		name   string
		target string
		status int
		url    string
	}{
		{"Valid", "/wardrobe/image?category=ch&id=210&gender=F&color=1&color2=2", http.StatusOK, "ch|F|1|2"},
		{"MissingID", "/wardrobe/image?category=ch", http.StatusBadRequest, ""},
		{"UnknownCategory", "/wardrobe/image?category=zz&id=1", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodGet, tt.target)
			assert.Equal(t, tt.status, status)
			if tt.url != "" {
				var out map[string]string
				require.NoError(t, json.Unmarshal(body, &out))
				assert.Equal(t, tt.url, out["url"])
			}
		})
	}
}

func TestHandler_ClearCache(t *testing.T) {
	src := &fakeSource{catalog: testCatalog()}
	app := newTestApp(t, src)

	status, _ := doRequest(t, app, http.MethodPost, "/wardrobe/cache/clear")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, src.cleared)

	src.clearErr = errors.New("store offline")
	status, body := doRequest(t, app, http.MethodPost, "/wardrobe/cache/clear")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, string(body), "store offline")
}

func TestHandler_PublishDisabled(t *testing.T) {
	app := newTestApp(t, &fakeSource{catalog: testCatalog()})

	status, _ := doRequest(t, app, http.MethodPost, "/wardrobe/publish")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}
