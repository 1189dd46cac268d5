package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"voice-task-management/config"
	"voice-task-management/internal/middleware"
	"voice-task-management/pkg/log"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestRequestIDIsGeneratedAndEchoed(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.RateLimitConfig{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.RateLimitConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRateLimitPerClient(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 1,
		Burst:          2,
		CacheSize:      10,
		TTL:            time.Minute,
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1, Burst: 1}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
