package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestIssueAndVerify(t *testing.T) {
	iss := NewTokenIssuer("super-secret", 0)
	assert.Equal(t, 10*time.Hour, iss.TTL())

	tok, err := iss.Issue(map[string]interface{}{"email": "a@x.com", "name": "A"})
	require.NoError(t, err)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "A", claims["name"])
}

func TestIssue_OverridesExpiry(t *testing.T) {
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	iss := NewTokenIssuer("k", time.Hour).WithClock(c.now)

	tok, err := iss.Issue(map[string]interface{}{"email": "a@x.com", "exp": 1})
	require.NoError(t, err)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, c.t.Add(time.Hour).Unix(), exp.Unix())
}

func TestIssue_NoSecret(t *testing.T) {
	_, err := NewTokenIssuer("", 0).Issue(map[string]interface{}{"email": "a@x.com"})
	assert.ErrorIs(t, err, ErrSigning)
}

func TestVerify_ExpiresAfterTenHours(t *testing.T) {
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	iss := NewTokenIssuer("k", 0).WithClock(c.now)

	tok, err := iss.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	c.t = c.t.Add(10*time.Hour - time.Second)
	_, err = iss.Verify(tok)
	require.NoError(t, err)

	c.t = c.t.Add(2 * time.Second)
	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_SamePayloadSameSecond(t *testing.T) {
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	iss := NewTokenIssuer("k", 0).WithClock(c.now)

	a, err := iss.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)
	b, err := iss.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	for _, tok := range []string{a, b} {
		_, err := iss.Verify(tok)
		assert.NoError(t, err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	iss := NewTokenIssuer("right", 0)
	other, err := NewTokenIssuer("wrong", 0).Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).SignedString([]byte("right"))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"wrong secret": other,
		"malformed":    "not.a.jwt",
		"alg none":     none,
		"no expiry":    noExp,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Verify(raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
