package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"calendar-assistant/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestMiddleware(t *testing.T, cfg Config) Middleware {
	t.Helper()
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.NewRegistry()
	}
	mw, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return mw
}

func TestRequestID(t *testing.T) {
	mw := newTestMiddleware(t, Config{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, seen)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("oversized header replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", maxRequestIDLen+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	})
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1, so the second immediate request is refused.
	mw := newTestMiddleware(t, Config{RateLimitEnabled: true, RequestsPerMin: 10})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1001"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2:1000"))
}

func TestRateLimit_ConcurrentFirstRequestsShareOneBucket(t *testing.T) {
	// Burst of 1: however many first requests race, only one may pass.
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.allow("10.0.0.9") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
	assert.Equal(t, 1, rl.limiters.Len())
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := newTestMiddleware(t, Config{RateLimitEnabled: false, RequestsPerMin: 1})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := newTestMiddleware(t, Config{Registerer: reg})

	r := gin.New()
	r.Use(mw.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// One series for the templated route, one for the unmatched path.
	assert.Equal(t, 2, testutil.CollectAndCount(mw.duration, "http_request_duration_seconds"))
}

func TestNew_ReusesRegisteredHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(log.NewNop(), Config{Registerer: reg})
	require.NoError(t, err)
	second, err := New(log.NewNop(), Config{Registerer: reg})
	require.NoError(t, err)

	assert.Same(t, first.duration, second.duration)
}

func TestRecovery(t *testing.T) {
	mw := newTestMiddleware(t, Config{})

	r := gin.New()
	r.Use(mw.Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}
