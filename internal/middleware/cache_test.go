package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodbanker/bloodbanker-server/internal/config"
)

func routedContext(method, target, route string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.0.0.7:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return c
}

func TestCacheKeyFrom(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "bb:cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog?status=published", "/blog"))
	b := cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog?status=draft", "/blog"))
	again := cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog?status=published", "/blog"))

	assert.True(t, strings.HasPrefix(a, "bb:cache:/blog:"), a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)

	cfg.KeyStrategy = "route"
	a = cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog?status=published", "/blog"))
	b = cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog?status=draft", "/blog"))
	assert.Equal(t, a, b)

	// Every variant of a route shares the namespace Invalidate scans.
	one := cacheKeyFrom(cfg, routedContext(http.MethodGet, "/blog/1", "/blog/:id"))
	assert.True(t, strings.HasPrefix(one, routeKey(cfg.Prefix, "/blog/:id")+":"))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	body := []byte(`[{"name":"Dhaka"}]`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, echo.MIMEApplicationJSON, gotHdr.Get(echo.HeaderContentType))
	assert.Equal(t, body, gotBody)

	_, _, _, ok = decodePayload([]byte{0, 0})
	assert.False(t, ok)
	_, _, _, ok = decodePayload(append(bs[:8:8], '{'))
	assert.False(t, ok)
}

func TestResponseCache_DisabledIsPassThrough(t *testing.T) {
	var nilCache *ResponseCache
	nilCache.Invalidate(context.Background(), "/blog")

	rc := NewResponseCache(config.CacheConfig{Enabled: true}, nil, nil)
	rc.Invalidate(context.Background(), "/blog")

	e := echo.New()
	e.GET("/blog", func(c echo.Context) error { return c.String(http.StatusOK, "posts") }, rc.Middleware())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))
	assert.Equal(t, "posts", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestBuildRateKey(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "bb:rl"}
	c := routedContext(http.MethodGet, "/users", "/users")

	assert.Equal(t, "bb:rl:ip:10.0.0.7:user:guest:route:GET /users", buildRateKey(cfg, c))

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "bb:rl:ip:10.0.0.7", buildRateKey(cfg, c))

	cfg.KeyStrategy = "user"
	c.Set(ClaimsKey, jwt.MapClaims{"email": "a@x.com"})
	assert.Equal(t, "bb:rl:user:a@x.com", buildRateKey(cfg, c))
}

func TestTokenBucket_NoRedisIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil, nil)
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, mw)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(4), asInt64(int64(4)))
	assert.Equal(t, int64(4), asInt64(4))
	assert.Equal(t, int64(4), asInt64(4.0))
	assert.Equal(t, int64(4), asInt64("4"))
	assert.Equal(t, int64(0), asInt64(nil))
}
