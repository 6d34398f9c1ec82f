// Package cmd: команды gssctl.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/app"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/pkg/logger"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/offlinecache"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gssctl",
	Short: "Operator tool for the GSS discovery service",
	Long: `gssctl works against the same stores as the service and reads the same
GSS_* environment (or .env).

Examples:
  gssctl cache clear
  gssctl cache remove providers:electrician
  gssctl providers seed ./providers.json
  gssctl providers search --category electrician --lat 10.1301 --lng 124.8447 --sort nearest`,
	SilenceUsage: true,
}

// Execute запускает CLI; SIGINT и SIGTERM отменяют контекст команды.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(providersCmd)
}

// env: конфиг, логгер и подключения для одной команды.
type env struct {
	cfg  app.Config
	log  *slog.Logger
	deps *app.Deps
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := app.LoadCfg()
	if err != nil {
		return nil, err
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(os.Stderr, level)
	deps, err := app.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, deps: deps}, nil
}

// cache строит офлайн-кэш без источника сети: CLI всегда считает себя онлайн.
func (e *env) cache() *offlinecache.Cache {
	return offlinecache.New(e.deps.Store, nil, e.log, e.cfg.Cache.Options()...)
}

func (e *env) Close() {
	_ = e.deps.Close()
}
