package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(t *testing.T, limit int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(client, limit, window, newTestLogger()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func doGet(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_BlocksAfterLimit(t *testing.T) {
	router, _ := newRateLimitedRouter(t, 2, time.Minute)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	w := doGet(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = doGet(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests from this IP, please try again later."}`, w.Body.String())

	// Другой IP считается отдельно
	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.2:1234").Code)
}

func TestRateLimitMiddleware_WindowExpires(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "10.0.0.1:1234").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
}

func TestRateLimitMiddleware_WindowNotExtended(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 10, time.Minute)
	key := "ratelimit:10.0.0.1"

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(20 * time.Second)
	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	assert.Equal(t, 40*time.Second, mr.TTL(key))
}

func TestRateLimitMiddleware_CounterWithoutTTLGetsWindow(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 10, time.Minute)
	key := "ratelimit:10.0.0.1"
	// счетчик остался без TTL: иначе IP был бы заблокирован навсегда
	require.NoError(t, mr.Set(key, "10"))

	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "10.0.0.1:1234").Code)
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 1, time.Minute)
	mr.Close()

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 0, time.Minute)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
	}
	assert.Empty(t, mr.Keys())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}
