package auth

import (
	"errors"
	"net/http"
	"strings"

	"sokohub/internal/api"
	"sokohub/internal/database"
	"sokohub/internal/model"
	"sokohub/internal/service"
	"sokohub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	getUserByEmail  = store.GetUserByEmail
	createUser      = store.CreateUser
)

// LoginHandler authenticates by email and password and returns a signed token.
// Unknown email and wrong password produce the same response so callers
// cannot probe which addresses are registered.
// @Summary     Log in
// @Description Verify email and password, return an access token and the user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, issuer *service.TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		}

		token, err := issuer.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			Token: token,
			User:  api.NewUserResponse(user),
		})
	}
}

// SignupHandler registers a new account. Role is always "user"; admin
// accounts only come from the seed migration.
// @Summary     Sign up
// @Description Create an account and return an access token and the user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "new account"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB, issuer *service.TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         model.RoleUser,
			Avatar:       req.Avatar,
			Phone:        req.Phone,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		token, err := issuer.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Token: token,
			User:  api.NewUserResponse(user),
		})
	}
}
