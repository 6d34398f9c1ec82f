package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config: настройки логгера. Переменные: GSS_LOG_LEVEL, GSS_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	// File: путь к файлу лога; при пустой строке пишем только в stderr.
	File string `envconfig:"FILE" default:"gss.log"`
}

// logWriter открывает файл лога и возвращает writer в файл + stderr (и в файл, и в консоль).
// При ошибке открытия файла возвращает только stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает текстовый логгер по конфигу.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает логгер с заданным уровнем, пишущий в w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel разбирает уровень (debug, info, warn, error); неизвестный считается info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
