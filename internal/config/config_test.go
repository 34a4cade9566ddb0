package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sokohub")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 24, cfg.JWTTTLHours)
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, 5.0, cfg.AuthRateRPS)
	require.Equal(t, 10, cfg.AuthRateBurst)
	require.Equal(t, 0, cfg.RedisDB)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("AUTH_RATE_RPS", "0.5")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 2, cfg.JWTTTLHours)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, 0.5, cfg.AuthRateRPS)
	require.Equal(t, 3, cfg.RedisDB)
}

func TestLoadMissingRequired(t *testing.T) {
	cases := []string{"DATABASE_URL", "REDIS_ADDR", "JWT_SECRET"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoadInvalidWorkerCount(t *testing.T) {
	setRequired(t)
	t.Setenv("WORKER_COUNT", "-1")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMalformedIntFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL_HOURS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 24, cfg.JWTTTLHours)
}
