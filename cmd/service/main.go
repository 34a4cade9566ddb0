// @title        SokoHub Directory API
// @version      1.0
// @description  REST API for the SokoHub business directory
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"sokohub/internal/cache"
	"sokohub/internal/config"
	"sokohub/internal/database"
	"sokohub/internal/middleware"
	"sokohub/internal/router"
	"sokohub/internal/service"
	"sokohub/internal/upload"
	"sokohub/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	_ "sokohub/docs" // generated by swag

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newUploadSvc    = upload.NewService
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	uploads, err := newUploadSvc(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("preparing upload directory: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	issuer := service.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Uploaded images and avatars, served read-only.
	e.Static(upload.PublicPrefix, cfg.UploadDir)

	router.Setup(e, router.Deps{
		DB:          db,
		Cache:       rdb,
		Issuer:      issuer,
		Uploads:     uploads,
		Workers:     wp,
		AuthLimiter: middleware.NewRateLimiter(rate.Limit(cfg.AuthRateRPS), cfg.AuthRateBurst),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+cfg.Port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
