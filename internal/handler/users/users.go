package users

import (
	"errors"
	"net/http"
	"strings"

	"sokohub/internal/api"
	"sokohub/internal/database"
	"sokohub/internal/middleware"
	"sokohub/internal/service"
	"sokohub/internal/store"
	"sokohub/internal/upload"
	"sokohub/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID       = store.GetUserByID
	updateUserProfile = store.UpdateUserProfile
	countUsers        = store.CountUsers
	listAdmins        = store.ListAdmins
)

func claimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
	return claims, ok && claims.UserID != ""
}

// GetMeHandler returns the authenticated user's profile.
// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserEnvelope
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(user)})
	}
}

// UpdateMeHandler updates name/email/phone and optionally replaces the
// avatar. A replaced avatar file is deleted from disk best-effort on the
// worker pool; a failed delete is logged and never surfaced.
// @Summary     Update current user
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Param       name   formData string true  "name"
// @Param       email  formData string true  "email"
// @Param       phone  formData string false "phone"
// @Param       avatar formData file   false "avatar image"
// @Success     200 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user [put]
func UpdateMeHandler(db database.DB, uploads upload.Uploader, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		ctx := c.Request().Context()
		current, err := getUserByID(ctx, db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		avatar := current.Avatar
		if file, err := c.FormFile("avatar"); err == nil && file != nil {
			path, err := uploads.Save(file)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store avatar"})
			}
			if old := current.Avatar; old != nil && *old != path {
				logger := c.Logger()
				stale := *old
				wp.Submit(func() {
					if err := uploads.Remove(stale); err != nil {
						logger.Warnf("removing old avatar %s: %v", stale, err)
					}
				})
			}
			avatar = &path
		}

		current.Name = req.Name
		current.Email = strings.ToLower(req.Email)
		current.Phone = req.Phone
		current.Avatar = avatar
		if err := updateUserProfile(ctx, db, current); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicateEmail):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already in use"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			}
		}

		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(current)})
	}
}

// CountUsersHandler returns the total account count for the admin dashboard.
// @Summary     Count users
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users/count [get]
func CountUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := countUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.CountResponse{Count: count})
	}
}

// ListAdminsHandler returns all administrator accounts.
// @Summary     List admins
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.AdminsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/admins [get]
func ListAdminsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		admins, err := listAdmins(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		resp := api.AdminsResponse{Admins: make([]api.UserResponse, 0, len(admins))}
		for i := range admins {
			resp.Admins = append(resp.Admins, api.NewUserResponse(&admins[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
