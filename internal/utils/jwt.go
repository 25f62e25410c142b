package utils // package utils provides the credential issuer shared by handlers and middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued credential.
const DefaultTokenTTL = 10 * time.Hour

var (
	// ErrSigning is returned when no secret is configured or signing fails.
	ErrSigning = errors.New("signing error")
	// ErrTokenExpired is returned for a well-formed credential past its exp.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers malformed credentials and bad signatures.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenIssuer signs and verifies HS256 credentials around an arbitrary
// claims payload.  The payload is embedded as given; only exp and iat are
// set by the issuer.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer for secret.  A non-positive ttl falls back
// to DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the issuer's time source.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

// TTL reports how long issued credentials stay valid.
func (i *TokenIssuer) TTL() time.Duration { return i.ttl }

// Issue signs claims with an absolute expiry ttl from now.
func (i *TokenIssuer) Issue(claims map[string]interface{}) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("%w: secret not configured", ErrSigning)
	}
	now := i.now()
	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(i.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signed, nil
}

// Verify checks signature, structure and expiry and returns the decoded
// claims.  Only HMAC-signed credentials are accepted.
func (i *TokenIssuer) Verify(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	case !tok.Valid:
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
