package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	appcustomer "github.com/xiebiao/bookstore-api/internal/application/customer"
	"github.com/xiebiao/bookstore-api/internal/application/event"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/mq"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// stores 按store.driver选出的仓储实现
type stores struct {
	books     book.Repository
	tx        book.Transactor
	customers customer.Repository
}

// provideStores 创建存储
// mysql驱动返回的cleanup负责关闭连接池
func provideStores(cfg *config.Config) (*stores, func(), error) {
	if cfg.Store.Driver == config.DriverMemory {
		s := memory.NewStore()
		logger.Get().Warn().Msg("使用内存存储，进程退出后数据丢失")
		return &stores{books: s.Books(), tx: s, customers: s.Customers()}, func() {}, nil
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := mysql.Close(db); err != nil {
			logger.Get().Error().Err(err).Msg("关闭数据库连接失败")
		}
	}
	return &stores{
		books:     mysql.NewBookRepository(db),
		tx:        mysql.NewTxManager(db),
		customers: mysql.NewCustomerRepository(db),
	}, cleanup, nil
}

func provideBookRepository(s *stores) book.Repository         { return s.books }
func provideTransactor(s *stores) book.Transactor              { return s.tx }
func provideCustomerRepository(s *stores) customer.Repository { return s.customers }

// provideRedisClient 未启用Redis时返回nil
func provideRedisClient(cfg *config.Config) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
	return client, cleanup, nil
}

// provideRecordCache 图书与客户共用一个缓存实例（同一个redis熔断器）
// 未启用Redis时返回nil
func provideRecordCache(cfg *config.Config, client *goredis.Client) *redis.RecordCache {
	if client == nil {
		return nil
	}
	return redis.NewRecordCache(client, cfg.Redis.TTL)
}

func provideBookCache(rc *redis.RecordCache) appbook.Cache {
	if rc == nil {
		return appbook.NopCache{}
	}
	return rc
}

func provideCustomerCache(rc *redis.RecordCache) appcustomer.Cache {
	if rc == nil {
		return appcustomer.NopCache{}
	}
	return rc
}

// providePublisher 未启用消息队列时返回NopPublisher
func providePublisher(cfg *config.Config) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return event.NopPublisher{}, func() {}, nil
	}
	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("关闭消息发布者失败")
		}
	}
	return p, cleanup, nil
}

// provideGinEngine 创建并配置Gin引擎
// 中间件顺序：Recovery → 请求日志 → 链路追踪 → 指标 → CORS
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	customerHandler *handler.CustomerHandler,
) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Tracing())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.CORS(cfg.CORS))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档（release模式不暴露）
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, bookHandler, customerHandler)
	return r
}

// provideServer 创建HTTP服务
func provideServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// describeStore 启动日志中的存储描述
func describeStore(cfg *config.Config) string {
	if cfg.Store.Driver == config.DriverMemory {
		return config.DriverMemory
	}
	return fmt.Sprintf("mysql %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
}
