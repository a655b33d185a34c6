package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	r := newEngine(RateLimit(2, zap.NewNop()))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", nil).Code)

	rec := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_code":"rate_limited"`)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID(), RequestLogger(zap.NewNop()))

	rec := do(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "abc"})
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(zap.NewNop()))

	rec := do(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_code":"internal_error"`)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://app.test"}))

	rec := do(r, http.MethodOptions, "/", map[string]string{
		"Origin":                        "http://app.test",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(r, http.MethodGet, "/", map[string]string{"Origin": "http://evil.test"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRateLimiterStore_EvictsIdleIPs(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newRateLimiterStore(10, func() time.Time { return now })

	for i := 0; i < 50; i++ {
		s.get(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 50, s.size())

	now = now.Add(limiterIdleTTL / 2)
	active := s.get("10.0.0.1")
	assert.Equal(t, 50, s.size(), "no sweep before the interval")

	now = now.Add(limiterIdleTTL / 2)
	assert.Same(t, active, s.get("10.0.0.1"), "recently seen IP keeps its bucket")
	assert.Equal(t, 1, s.size())
}
