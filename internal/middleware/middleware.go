package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sokohub/internal/api"
	"sokohub/internal/database"
	"sokohub/internal/service"
	"sokohub/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getProviderByID = store.GetProviderByID

func extractClaims(c echo.Context, issuer *service.TokenIssuer) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errors.New("invalid authorization header format")
	}
	claims, err := issuer.Verify(parts[1])
	if err != nil {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims under ContextUserKey.
func RequireAuth(issuer *service.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, issuer)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized: " + err.Error()})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func RequireAdmin(issuer *service.TokenIssuer) echo.MiddlewareFunc {
	auth := RequireAuth(issuer)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if !claims.IsAdmin() {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Forbidden: admin access required"})
			}
			return next(c)
		})
	}
}

// RequireProviderOwner guards mutating provider routes: admins pass without a
// lookup, everyone else must own the provider named by :id. An unknown id is
// 404 so callers can tell "gone" from "not yours".
func RequireProviderOwner(issuer *service.TokenIssuer, db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(issuer)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if claims.IsAdmin() {
				return next(c)
			}
			id := c.Param("id")
			if id == "" {
				return next(c)
			}
			p, err := getProviderByID(c.Request().Context(), db, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			}
			if p.OwnerID == nil || *p.OwnerID != claims.UserID {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Forbidden: you can only manage your own providers"})
			}
			return next(c)
		})
	}
}
