package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("Secret123!")
	require.NoError(t, err)
	h2, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt rejects input over 72 bytes.
	_, err := HashPassword(strings.Repeat("x", 73))
	require.Error(t, err)
}
