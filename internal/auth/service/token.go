package service

import (
	"fmt"
	"time"

	"github.com/ayurtrack/authd/internal/auth/domain"
	"github.com/ayurtrack/authd/pkg/jwtx"
)

// TokenService issues and verifies the stateless bearer tokens that stand in
// for sessions. Tokens live only on the client; there is no revocation list,
// expiry is the sole server-side end of a session.
type TokenService struct {
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Issuer    string
	AccessTTL time.Duration
}

// Issue signs a token carrying the user's identity claim with a fixed
// absolute expiry.
func (s *TokenService) Issue(user domain.User) (string, error) {
	ttl := s.AccessTTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Verify checks signature, expiry and issuer, returning the embedded claims.
// Failures are typed (jwtx.ErrMalformed, ErrExpired, ErrInvalidSig, ...) so
// callers can log the sub-cause while collapsing all of them to 401.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}
