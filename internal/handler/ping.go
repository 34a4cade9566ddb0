package handler

import (
	"net/http"

	"sokohub/internal/api"
	"sokohub/internal/database"

	"github.com/labstack/echo/v4"
)

// swagger:model handler.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports service health.
// @Summary     Health Check
// @Description Returns pong after checking database connectivity
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
