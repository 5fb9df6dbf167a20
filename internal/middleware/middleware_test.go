package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"teslo/internal/middleware"
	"teslo/internal/repositories"
	"teslo/internal/services"
	"teslo/pkg/password"
	"teslo/pkg/token"
)

func TestAuthRequired(t *testing.T) {
	tokens := token.NewManager("middleware-secret", time.Hour)
	authService := services.NewAuthService(repositories.NewMemoryUserRepository(),
		password.NewHasher(bcrypt.MinCost), tokens, zap.NewNop())

	app := fiber.New()
	app.Get("/me", middleware.AuthRequired(authService, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.LocalUserID).(string) + " " + c.Locals(middleware.LocalEmail).(string))
	})

	valid, err := tokens.Issue(token.Payload{UserID: "u1", Email: "a@example.com"})
	require.NoError(t, err)
	foreign, err := token.NewManager("other-secret", time.Hour).Issue(token.Payload{UserID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "u1 a@example.com", string(body))
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	entries := logs.FilterMessage("Request").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/teapot", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status_code"])
}

func TestMetrics(t *testing.T) {
	metrics := middleware.NewMetrics("test")
	app := fiber.New()
	app.Use(metrics.Handler())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, id := range []string{"1", "2", "3"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/"+id, nil), -1)
		require.NoError(t, err)
	}

	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != "test_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" {
					assert.Equal(t, "/items/:id", l.GetValue())
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 3.0, total)
}
