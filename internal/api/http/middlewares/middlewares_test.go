package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics("/metrics"), RequestLogger(log, "/liveness"))
	r.GET("/liveness", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })
	return r
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id, "id должен генерироваться")
	assert.Equal(t, id, w.Body.String(), "id доступен обработчику")
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/liveness", nil))
	assert.Empty(t, buf.String(), "пробы пишутся на Debug")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=500")
	assert.Contains(t, buf.String(), "route=/boom")
}
