package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader: заголовок корреляции запроса.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey: ключ id запроса в gin.Context.
const RequestIDKey = "request_id"

// RequestLogger логирует запрос после обработки. id берётся из X-Request-ID
// или генерируется и возвращается клиенту в том же заголовке.
// 5xx пишутся с уровнем Warn, пробы из quiet (liveness, readiness) с уровнем Debug.
func RequestLogger(log *slog.Logger, quiet ...string) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	quietPaths := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		quietPaths[p] = struct{}{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelWarn
		case isQuiet(quietPaths, c.Request.URL.Path):
			level = slog.LevelDebug
		}
		attrs := []any{
			"id", id,
			"method", c.Request.Method,
			"route", c.FullPath(),
			"query", c.Request.URL.RawQuery,
			"status", status,
			"ip", c.ClientIP(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		log.Log(c.Request.Context(), level, "request", attrs...)
	}
}

func isQuiet(paths map[string]struct{}, p string) bool {
	_, ok := paths[p]
	return ok
}
