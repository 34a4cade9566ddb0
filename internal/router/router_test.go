package router

import (
	"net/http"
	"testing"
	"time"

	"sokohub/internal/cache"
	"sokohub/internal/database"
	"sokohub/internal/middleware"
	"sokohub/internal/service"
	"sokohub/internal/upload"
	"sokohub/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, Deps{
		DB:          &database.FakeDB{},
		Cache:       &cache.FakeCache{},
		Issuer:      service.NewTokenIssuer("testsecret", time.Minute),
		Uploads:     &upload.FakeUploader{},
		Workers:     wp,
		AuthLimiter: middleware.NewRateLimiter(rate.Limit(5), 10),
	})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/login",
		http.MethodPost + " /api/signup",
		http.MethodGet + " /api/user",
		http.MethodPut + " /api/user",
		http.MethodGet + " /api/providers",
		http.MethodGet + " /api/featured-providers",
		http.MethodGet + " /api/offers",
		http.MethodGet + " /api/user-providers",
		http.MethodPost + " /api/providers",
		http.MethodPut + " /api/providers/:id",
		http.MethodDelete + " /api/providers/:id",
		http.MethodGet + " /api/admin/users/count",
		http.MethodGet + " /api/admin/admins",
		http.MethodGet + " /api/admin/providers",
		http.MethodPost + " /api/admin/providers",
		http.MethodPut + " /api/admin/providers/:id",
		http.MethodDelete + " /api/admin/providers/:id",
		http.MethodPut + " /api/admin/providers/:id/featured",
		http.MethodPost + " /api/admin/offers",
		http.MethodPut + " /api/admin/offers/:id",
		http.MethodDelete + " /api/admin/offers/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
