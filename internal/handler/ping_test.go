package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sokohub/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, PingHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		pinged := false
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { pinged = true; return nil },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, PingHandler(db)(ctx))
		require.True(t, pinged)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
