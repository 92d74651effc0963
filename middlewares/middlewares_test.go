package middlewares

import (
	"MediCare/services"
	"MediCare/utils"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateAPIKey(t *testing.T) {
	router := gin.New()
	router.Use(ValidateAPIKey("secret"))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"valid", "secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			assert.Equal(t, tt.status, serve(router, req).Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(router, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	assert.Empty(t, GetRequestID(context.Background()))
}

func TestRateLimiterPerClient(t *testing.T) {
	data := &rateLimiterData{
		config:  RateLimiterConfig{RequestsPerSecond: 1, Burst: 2},
		clients: make(map[string]*clientLimiter),
	}
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, data.allow("10.0.0.1", now))
	assert.True(t, data.allow("10.0.0.1", now))
	assert.False(t, data.allow("10.0.0.1", now))
	assert.True(t, data.allow("10.0.0.2", now))

	// Idle clients are evicted and start over with a full bucket
	later := now.Add(limiterIdleTimeout + time.Second)
	assert.True(t, data.allow("10.0.0.2", later))
	_, kept := data.clients["10.0.0.1"]
	assert.False(t, kept)
}

func TestRateLimiterMiddlewareRejects(t *testing.T) {
	router := gin.New()
	router.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

type fakeAuth struct {
	services.AuthProvider
	verify func(ctx context.Context, token string) (services.Session, error)
}

func (f fakeAuth) Verify(ctx context.Context, token string) (services.Session, error) {
	return f.verify(ctx, token)
}

func TestSessionAuthMiddleware(t *testing.T) {
	auth := fakeAuth{verify: func(_ context.Context, token string) (services.Session, error) {
		switch token {
		case "good":
			return services.Session{UID: "patient-1", Email: "asha@example.com"}, nil
		case "broken":
			return services.Session{}, errors.New("backend down")
		}
		return services.Session{}, services.ErrInvalidToken
	}}

	router := gin.New()
	router.Use(SessionAuthMiddleware(auth))
	router.GET("/me", func(c *gin.Context) {
		session, ok := GetSession(c)
		require.True(t, ok)
		c.String(http.StatusOK, session.UID)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := serve(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "patient-1", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: "good"})
	assert.Equal(t, http.StatusOK, serve(router, req).Code)

	assert.Equal(t, http.StatusUnauthorized, serve(router, httptest.NewRequest(http.MethodGet, "/me", nil)).Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	assert.Equal(t, http.StatusUnauthorized, serve(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer broken")
	assert.Equal(t, http.StatusInternalServerError, serve(router, req).Code)
}

func TestGetSessionMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetSession(c)
	assert.False(t, ok)
}
