package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fixedLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (f *fixedLimiter) Allow(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/", handlers...)
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter *fixedLimiter
		want    int
	}{
		{"allowed", &fixedLimiter{allowed: true}, http.StatusOK},
		{"rejected", &fixedLimiter{allowed: false}, http.StatusTooManyRequests},
		{"limiter error fails open", &fixedLimiter{err: errors.New("redis down")}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newEngine(RateLimit(tt.limiter)))
			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, 1, tt.limiter.calls)
		})
	}
}

func TestRateLimitNilLimiter(t *testing.T) {
	w := serve(newEngine(RateLimit(nil)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	w := serve(newEngine(Recovery(), func(c *gin.Context) { panic("boom") }))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","details":"boom"}`, w.Body.String())
}

func TestLoggerPassesThrough(t *testing.T) {
	w := serve(newEngine(Logger()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
