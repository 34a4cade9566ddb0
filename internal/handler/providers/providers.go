package providers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"sokohub/internal/api"
	"sokohub/internal/cache"
	"sokohub/internal/database"
	"sokohub/internal/middleware"
	"sokohub/internal/model"
	"sokohub/internal/service"
	"sokohub/internal/store"
	"sokohub/internal/upload"
	"sokohub/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listProviders         = store.ListProviders
	listFeaturedProviders = store.ListFeaturedProviders
	listProvidersByOwner  = store.ListProvidersByOwner
	getProviderByID       = store.GetProviderByID
	createProvider        = store.CreateProvider
	updateProvider        = store.UpdateProvider
	setProviderFeatured   = store.SetProviderFeatured
	deleteProvider        = store.DeleteProvider
)

const (
	featuredCacheKey = "providers:featured"
	featuredCacheTTL = time.Minute
)

// invalidateFeatured drops the cached featured list after any mutation that
// could change what it shows. Best-effort: a failed delete only shortens
// nothing, the entry still expires by TTL.
func invalidateFeatured(c echo.Context, rdb cache.Cache) {
	if err := rdb.Del(c.Request().Context(), featuredCacheKey).Err(); err != nil {
		c.Logger().Warnf("invalidating featured cache: %v", err)
	}
}

func imageFiles(c echo.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// ListHandler returns providers, optionally filtered by exact category and
// subcategory and a case-insensitive substring search over name/description.
// @Summary     List providers
// @Tags        providers
// @Produce     json
// @Param       category    query string false "exact category"
// @Param       subcategory query string false "exact subcategory"
// @Param       search      query string false "substring of name or description"
// @Success     200 {object} api.ProvidersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /providers [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.ProviderFilter{
			Category:    c.QueryParam("category"),
			Subcategory: c.QueryParam("subcategory"),
			Search:      c.QueryParam("search"),
		}
		provs, err := listProviders(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.ProvidersResponse{Providers: provs})
	}
}

// FeaturedHandler returns the admin-curated featured listings, served from
// Redis when a fresh copy exists.
// @Summary     List featured providers
// @Tags        providers
// @Produce     json
// @Success     200 {object} api.ProvidersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /featured-providers [get]
func FeaturedHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if raw, err := rdb.Get(ctx, featuredCacheKey).Bytes(); err == nil {
			var cached []model.Provider
			if err := json.Unmarshal(raw, &cached); err == nil {
				return c.JSON(http.StatusOK, api.ProvidersResponse{Providers: cached})
			}
		}

		provs, err := listFeaturedProviders(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		if raw, err := json.Marshal(provs); err == nil {
			if err := rdb.Set(ctx, featuredCacheKey, raw, featuredCacheTTL).Err(); err != nil {
				c.Logger().Warnf("caching featured providers: %v", err)
			}
		}
		return c.JSON(http.StatusOK, api.ProvidersResponse{Providers: provs})
	}
}

// MineHandler returns the listings owned by the authenticated user.
// @Summary     List own providers
// @Tags        providers
// @Produce     json
// @Success     200 {object} api.ProvidersResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user-providers [get]
func MineHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok || claims.UserID == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}
		provs, err := listProvidersByOwner(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.ProvidersResponse{Providers: provs})
	}
}

// CreateHandler creates a listing from a multipart form. The final image
// sequence is the caller's existingImages followed by freshly uploaded files,
// in that order. When ownerFromForm is set (admin route) the owner comes from
// the user_id field and may be empty; otherwise the caller owns the listing.
// @Summary     Create a provider
// @Tags        providers
// @Accept      multipart/form-data
// @Produce     json
// @Success     201 {object} api.ProviderEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /providers [post]
func CreateHandler(db database.DB, uploads upload.Uploader, ownerFromForm bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProviderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		images := model.ImageList{}
		if req.ExistingImages != "" {
			parsed, err := model.ParseImages(req.ExistingImages)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid existingImages format"})
			}
			images = parsed
		}

		hours := model.OpeningHours{}
		if req.OpeningHours != "" {
			parsed, err := model.ParseOpeningHours(req.OpeningHours)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid openingHours format"})
			}
			hours = parsed
		}

		uploaded, err := uploads.SaveAll(imageFiles(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store images"})
		}
		images = append(images, uploaded...)

		var owner *string
		if ownerFromForm {
			owner = req.UserID
		} else {
			claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
			if !ok || claims.UserID == "" {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
			}
			owner = &claims.UserID
		}

		p := &model.Provider{
			ID:           req.ID,
			OwnerID:      owner,
			Name:         req.Name,
			Username:     req.Username,
			City:         req.City,
			ZipCode:      req.ZipCode,
			Location:     req.Location,
			Phone:        req.Phone,
			Email:        req.Email,
			Website:      req.Website,
			Description:  req.Description,
			Images:       images,
			OpeningHours: hours,
			Category:     req.Category,
			Subcategory:  req.Subcategory,
			Address:      req.Address,
		}
		created, err := createProvider(c.Request().Context(), db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		return c.JSON(http.StatusCreated, api.ProviderEnvelope{
			Message:  "Provider created successfully",
			Provider: created,
		})
	}
}

// UpdateHandler rewrites a listing. Stored images and opening hours are
// re-read first with tolerant decoding, then the same existingImages+append
// and parse-or-reject rules as create apply on top.
// @Summary     Update a provider
// @Tags        providers
// @Accept      multipart/form-data
// @Produce     json
// @Param       id path string true "provider id"
// @Success     200 {object} api.ProviderEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /providers/{id} [put]
func UpdateHandler(db database.DB, uploads upload.Uploader, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		var req api.ProviderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		ctx := c.Request().Context()
		current, err := getProviderByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		images := current.Images
		if req.ExistingImages != "" {
			parsed, err := model.ParseImages(req.ExistingImages)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid existingImages format"})
			}
			images = parsed
		}

		hours := current.OpeningHours
		if req.OpeningHours != "" {
			parsed, err := model.ParseOpeningHours(req.OpeningHours)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid openingHours format"})
			}
			hours = parsed
		}

		uploaded, err := uploads.SaveAll(imageFiles(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store images"})
		}
		images = append(images, uploaded...)

		current.Name = req.Name
		current.Username = req.Username
		current.City = req.City
		current.ZipCode = req.ZipCode
		current.Location = req.Location
		current.Phone = req.Phone
		current.Email = req.Email
		current.Website = req.Website
		current.Description = req.Description
		current.Images = images
		current.OpeningHours = hours
		current.Category = req.Category
		current.Subcategory = req.Subcategory
		current.Address = req.Address
		if err := updateProvider(ctx, db, current); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		invalidateFeatured(c, rdb)

		updated, err := getProviderByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.ProviderEnvelope{
			Message:  "Provider updated successfully",
			Provider: updated,
		})
	}
}

// DeleteHandler removes a listing; its offers cascade at the schema level and
// its uploaded images are cleaned up best-effort on the worker pool.
// @Summary     Delete a provider
// @Tags        providers
// @Produce     json
// @Param       id path string true "provider id"
// @Success     200 {object} api.MessageResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /providers/{id} [delete]
func DeleteHandler(db database.DB, uploads upload.Uploader, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		ctx := c.Request().Context()

		current, err := getProviderByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		if err := deleteProvider(ctx, db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		invalidateFeatured(c, rdb)

		if len(current.Images) > 0 {
			logger := c.Logger()
			images := current.Images
			wp.Submit(func() {
				for _, img := range images {
					if err := uploads.Remove(img); err != nil {
						logger.Warnf("removing image %s: %v", img, err)
					}
				}
			})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Provider deleted successfully"})
	}
}

// SetFeaturedHandler toggles the admin-curated featured flag.
// @Summary     Set featured status
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path string              true "provider id"
// @Param       body body api.FeaturedRequest true "featured flag"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/providers/{id}/featured [put]
func SetFeaturedHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		var req api.FeaturedRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		if err := setProviderFeatured(c.Request().Context(), db, id, *req.IsFeatured); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Provider not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		invalidateFeatured(c, rdb)

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Featured status updated successfully"})
	}
}
