package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ayurtrack/authd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "authd-test"

var testSecret = []byte("test-secret-at-least-32-bytes-long!!")

func signTestToken(t *testing.T, username string, ttl time.Duration) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-id", username, testIssuer, ttl, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestNewSignerHS256_RejectsEmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)
}

func TestHS256_SignVerifyRoundtrip(t *testing.T) {
	token := signTestToken(t, "alice123", time.Hour)

	v := jwtx.NewCommonHS256(testSecret, testIssuer)
	claims, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice123", claims.Username)
	require.Equal(t, "user-id", claims.Subject)
	require.Equal(t, testIssuer, claims.Issuer)
	require.NotEmpty(t, claims.ID, "jti should be set")
}

func TestHS256_VerifyFailures(t *testing.T) {
	v := jwtx.NewCommonHS256(testSecret, testIssuer)

	t.Run("malformed token", func(t *testing.T) {
		_, err := v.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("tampered signature", func(t *testing.T) {
		token := signTestToken(t, "alice123", time.Hour)

		// Flip the first character of the signature segment
		idx := strings.LastIndex(token, ".") + 1
		flip := byte('A')
		if token[idx] == 'A' {
			flip = 'B'
		}
		tampered := token[:idx] + string(flip) + token[idx+1:]

		_, err := v.Verify(tampered)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwtx.NewCommonHS256([]byte("a-completely-different-secret-value"), testIssuer)
		token := signTestToken(t, "alice123", time.Hour)
		_, err := other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, "alice123", -time.Minute)
		_, err := v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		other := jwtx.NewCommonHS256(testSecret, "some-other-service")
		token := signTestToken(t, "alice123", time.Hour)
		_, err := other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestNewJTI_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		jti := jwtx.NewJTI()
		require.NotEmpty(t, jti)
		require.False(t, seen[jti], "jti should be unique")
		require.False(t, strings.ContainsAny(jti, "+/="), "jti should be URL-safe")
		seen[jti] = true
	}
}
