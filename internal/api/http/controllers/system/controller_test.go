package system

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSystemRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProviderRepository(ctrl)
	mockCache := mocks.NewMockIOfflineCache(ctrl)
	gomock.InOrder(
		mockRepo.EXPECT().Ping(gomock.Any()).Return(nil),
		mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("mongo down")),
	)
	mockCache.EXPECT().IsOnline(gomock.Any()).Return(false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(mockCache, newTestLogger(), map[string]PingFunc{
		"mongo": mockRepo.Ping,
		"redis": func(context.Context) error { return nil },
	}).RegisterRoutes(r)

	tests := []struct {
		path     string
		wantCode int
		wantBody []string
	}{
		{path: "/liveness", wantCode: http.StatusOK, wantBody: []string{`"alive"`}},
		{path: "/readyness", wantCode: http.StatusOK, wantBody: []string{`"ready"`, `"mongo":"ok"`, `"redis":"ok"`}},
		{path: "/readyness", wantCode: http.StatusServiceUnavailable, wantBody: []string{`"not ready"`, `"mongo":"mongo down"`, `"redis":"ok"`}},
		{path: "/api/v1/network", wantCode: http.StatusOK, wantBody: []string{`{"online":false}`}},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.wantCode, w.Code, tt.path)
		for _, s := range tt.wantBody {
			assert.Contains(t, w.Body.String(), s, tt.path)
		}
	}
}

func TestReady_NoChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(nil, newTestLogger(), nil).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyness", nil))
	assert.Equal(t, http.StatusOK, w.Code, "без зависимостей сервис готов")
}
