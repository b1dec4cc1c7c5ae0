package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

// App HTTP服务进程
type App struct {
	cfg    *config.Config
	server *http.Server
}

func newApp(cfg *config.Config, server *http.Server) *App {
	return &App{cfg: cfg, server: server}
}

// Run 启动服务并阻塞，收到SIGINT/SIGTERM后优雅关闭
// 正在处理的请求在server.shutdown_timeout内完成
func (a *App) Run() error {
	log := logger.Get()
	shutdownErr := make(chan error, 1)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		log.Info().Str("signal", s.String()).Msg("正在关闭服务")

		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		shutdownErr <- a.server.Shutdown(ctx)
	}()

	log.Info().
		Str("addr", a.server.Addr).
		Str("mode", a.cfg.Server.Mode).
		Str("store", describeStore(a.cfg)).
		Bool("cache", a.cfg.Redis.Enabled).
		Bool("events", a.cfg.MQ.Enabled).
		Msg("服务启动")

	if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	log.Info().Msg("服务已停止")
	return nil
}
