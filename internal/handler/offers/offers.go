package offers

import (
	"errors"
	"net/http"

	"sokohub/internal/api"
	"sokohub/internal/database"
	"sokohub/internal/model"
	"sokohub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listOffers  = store.ListOffers
	createOffer = store.CreateOffer
	updateOffer = store.UpdateOffer
	deleteOffer = store.DeleteOffer
)

// ListHandler returns offers with the same filter semantics as the provider
// listing.
// @Summary     List offers
// @Tags        offers
// @Produce     json
// @Param       category    query string false "exact category"
// @Param       subcategory query string false "exact subcategory"
// @Param       search      query string false "substring of name or description"
// @Success     200 {object} api.OffersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /offers [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.OfferFilter{
			Category:    c.QueryParam("category"),
			Subcategory: c.QueryParam("subcategory"),
			Search:      c.QueryParam("search"),
		}
		offers, err := listOffers(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.OffersResponse{Offers: offers})
	}
}

func offerFromRequest(req *api.OfferRequest) *model.Offer {
	return &model.Offer{
		ID:              req.ID,
		ProviderID:      req.ProviderID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Duration:        req.Duration,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Image:           req.Image,
	}
}

// CreateHandler creates an offer; the provider reference is validated before
// anything is written.
// @Summary     Create an offer
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body api.OfferRequest true "offer"
// @Success     201 {object} api.OfferEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/offers [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.OfferRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		created, err := createOffer(c.Request().Context(), db, offerFromRequest(&req))
		if err != nil {
			if errors.Is(err, store.ErrInvalidReference) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid providerId"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		return c.JSON(http.StatusCreated, api.OfferEnvelope{
			Message: "Offer created successfully",
			Offer:   created,
		})
	}
}

// UpdateHandler rewrites an offer; like create, the provider reference must
// resolve first.
// @Summary     Update an offer
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path string           true "offer id"
// @Param       body body api.OfferRequest true "offer"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/offers/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.OfferRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		o := offerFromRequest(&req)
		o.ID = c.Param("id")
		if err := updateOffer(c.Request().Context(), db, o); err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidReference):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid providerId"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Offer not found"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			}
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Offer updated successfully"})
	}
}

// DeleteHandler removes an offer.
// @Summary     Delete an offer
// @Tags        admin
// @Produce     json
// @Param       id path string true "offer id"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/offers/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := deleteOffer(c.Request().Context(), db, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Offer not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Offer deleted successfully"})
	}
}
