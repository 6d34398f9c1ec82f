package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/api/http/middlewares"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newTestServer() *Server {
	srv := NewServer(ServerConfig{AllowOrigins: []string{"http://localhost:3000"}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv.AddController(pingController{})
	return srv
}

func TestHandler_RoutesAndMetrics(t *testing.T) {
	h := newTestServer().Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total", "счётчик запросов экспортируется")
}

func TestHandler_CORSPreflightForDelete(t *testing.T) {
	h := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cache", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}
