package router

import (
	"github.com/labstack/echo/v4"

	"sokohub/internal/cache"
	"sokohub/internal/database"
	"sokohub/internal/handler"
	"sokohub/internal/handler/auth"
	"sokohub/internal/handler/offers"
	"sokohub/internal/handler/providers"
	"sokohub/internal/handler/users"
	"sokohub/internal/middleware"
	"sokohub/internal/service"
	"sokohub/internal/upload"
	"sokohub/internal/worker"
)

// Deps bundles everything the routes need; constructed once in run() and
// injected here.
type Deps struct {
	DB          database.DB
	Cache       cache.Cache
	Issuer      *service.TokenIssuer
	Uploads     upload.Uploader
	Workers     worker.Pool
	AuthLimiter *middleware.RateLimiter
}

// Setup registers every route and its guard policy.
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(d.Issuer)
	requireAdmin := middleware.RequireAdmin(d.Issuer)
	requireOwner := middleware.RequireProviderOwner(d.Issuer, d.DB)

	// Health
	api.GET("/ping", handler.PingHandler(d.DB))

	// Auth (rate limited per IP)
	limited := d.AuthLimiter.Middleware()
	api.POST("/login", auth.LoginHandler(d.DB, d.Issuer), limited)
	api.POST("/signup", auth.SignupHandler(d.DB, d.Issuer), limited)

	// Profile
	api.GET("/user", users.GetMeHandler(d.DB), requireAuth)
	api.PUT("/user", users.UpdateMeHandler(d.DB, d.Uploads, d.Workers), requireAuth)

	// Public directory
	api.GET("/providers", providers.ListHandler(d.DB))
	api.GET("/featured-providers", providers.FeaturedHandler(d.DB, d.Cache))
	api.GET("/offers", offers.ListHandler(d.DB))

	// Self-service listings
	api.GET("/user-providers", providers.MineHandler(d.DB), requireAuth)
	api.POST("/providers", providers.CreateHandler(d.DB, d.Uploads, false), requireAuth)
	api.PUT("/providers/:id", providers.UpdateHandler(d.DB, d.Uploads, d.Cache), requireOwner)
	api.DELETE("/providers/:id", providers.DeleteHandler(d.DB, d.Uploads, d.Cache, d.Workers), requireOwner)

	// Admin
	admin := api.Group("/admin", requireAdmin)
	admin.GET("/users/count", users.CountUsersHandler(d.DB))
	admin.GET("/admins", users.ListAdminsHandler(d.DB))
	admin.GET("/providers", providers.ListHandler(d.DB))
	admin.POST("/providers", providers.CreateHandler(d.DB, d.Uploads, true))
	admin.PUT("/providers/:id", providers.UpdateHandler(d.DB, d.Uploads, d.Cache))
	admin.DELETE("/providers/:id", providers.DeleteHandler(d.DB, d.Uploads, d.Cache, d.Workers))
	admin.PUT("/providers/:id/featured", providers.SetFeaturedHandler(d.DB, d.Cache))
	admin.POST("/offers", offers.CreateHandler(d.DB))
	admin.PUT("/offers/:id", offers.UpdateHandler(d.DB))
	admin.DELETE("/offers/:id", offers.DeleteHandler(d.DB))
}
