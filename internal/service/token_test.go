package service

import (
	"testing"
	"time"

	"sokohub/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := model.User{ID: "user-1", Email: "alice@example.com", Role: model.RoleUser}

	tokenString, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, model.RoleUser, claims.Role)
	require.Equal(t, "user-1", claims.Subject)
	require.False(t, claims.IsAdmin())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokenString, err := NewTokenIssuer("secret-a", time.Hour).Issue(model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(tokenString)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := &TokenIssuer{secret: []byte("test-secret"), ttl: -time.Minute}
	tokenString, err := issuer.Issue(model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = issuer.Verify(tokenString)
	require.Error(t, err)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	// alg "none" carries no signature at all.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret", time.Hour).Verify(tokenString)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret", time.Hour).Verify("not.a.token")
	require.Error(t, err)
}

func TestNewTokenIssuerDefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)
	tokenString, err := issuer.Issue(model.User{ID: "user-1"})
	require.NoError(t, err)

	claims, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAdminClaims(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	tokenString, err := issuer.Issue(model.User{ID: "admin-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	claims, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	require.True(t, claims.IsAdmin())
}
