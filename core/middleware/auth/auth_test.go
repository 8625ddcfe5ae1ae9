package auth_test

import (
	"net/http/httptest"
	"testing"

	"wardrobe-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header map[string]string
		want   int
	}{
		{"Disabled", auth.Config{}, "/wardrobe/stats", nil, 200},
		{"MissingKey", auth.Config{ApiKey: "secret"}, "/wardrobe/stats", nil, 401},
		{"WrongKey", auth.Config{ApiKey: "secret"}, "/wardrobe/stats", map[string]string{"X-API-Key": "nope"}, 401},
		{"HeaderKey", auth.Config{ApiKey: "secret"}, "/wardrobe/stats", map[string]string{"X-API-Key": "secret"}, 200},
		{"BearerKey", auth.Config{ApiKey: "secret"}, "/wardrobe/stats", map[string]string{"Authorization": "Bearer secret"}, 200},
		{"SkippedPath", auth.Config{ApiKey: "secret", Skip: []string{"/swagger"}}, "/swagger/index.html", nil, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
