package service

import (
	"testing"
	"time"

	"github.com/ayurtrack/authd/internal/auth/domain"
	"github.com/ayurtrack/authd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()

	secret := []byte("token-service-test-secret-32bytes!!!")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	return &TokenService{
		Signer:    signer,
		Verifier:  jwtx.NewCommonHS256(secret, "authd-test"),
		Issuer:    "authd-test",
		AccessTTL: ttl,
	}
}

func TestTokenService_IssueVerify(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	user := domain.User{ID: "01USERID", Username: "alice123"}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice123", claims.Username)
	require.Equal(t, "01USERID", claims.Subject)

	// Fixed absolute expiry one hour out
	require.WithinDuration(t,
		time.Now().UTC().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := newTestTokenService(t, 0)

	token, err := svc.Issue(domain.User{ID: "u", Username: "alice123"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.WithinDuration(t,
		time.Now().UTC().Add(jwtx.DefaultAccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue(domain.User{ID: "u", Username: "alice123"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
