package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"sokohub/internal/cache"
	"sokohub/internal/config"
	"sokohub/internal/database"
	"sokohub/internal/upload"
	"sokohub/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newUploadSvc = upload.NewService
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		DatabaseURL:   "postgres://localhost/sokohub",
		RedisAddr:     "127.0.0.1:6379",
		RedisPassword: "pw",
		RedisDB:       1,
		JWTSecret:     "testsecret",
		JWTTTLHours:   24,
		UploadDir:     "uploads",
		WorkerCount:   1,
		AuthRateRPS:   5,
		AuthRateBurst: 10,
	}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://localhost/sokohub", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	newUploadSvc = func(dir string) (*upload.Service, error) {
		called["uploads"] = true
		require.Equal(t, "uploads", dir)
		return &upload.Service{Dir: dir}, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["uploads"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	loadConfig = func() (*config.Config, error) { return nil, errors.New("config") }
	require.Error(t, run())

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	newUploadSvc = func(string) (*upload.Service, error) { return nil, errors.New("mkdir") }
	require.Error(t, run())

	newUploadSvc = func(dir string) (*upload.Service, error) { return &upload.Service{Dir: dir}, nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	newUploadSvc = func(dir string) (*upload.Service, error) { return &upload.Service{Dir: dir}, nil }
	startServer = func(*echo.Echo, string) error { return nil }
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() (*config.Config, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
