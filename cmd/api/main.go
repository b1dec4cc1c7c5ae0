// Bookstore Records API
//
// @title        Bookstore Records API
// @version      1.0
// @description  图书与客户记录的创建、查询与更新
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/xiebiao/bookstore-api/docs"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

func main() {
	if err := run(); err != nil {
		logger.Get().Error().Err(err).Msg("服务异常退出")
		os.Exit(1)
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 初始化日志
	closer, err := logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer closer.Close()

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			return fmt.Errorf("初始化链路追踪失败: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Get().Error().Err(err).Msg("关闭链路追踪失败")
			}
		}()
	}

	// 4. 依赖注入（wire_gen.go）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化依赖失败: %w", err)
	}
	defer cleanup()

	// 5. 启动服务
	return app.Run()
}
