//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
// main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	appcustomer "github.com/xiebiao/bookstore-api/internal/application/customer"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖
// 存储、缓存、消息队列按配置选择实现
var infrastructureSet = wire.NewSet(
	provideStores,
	provideBookRepository,
	provideTransactor,
	provideCustomerRepository,
	provideRedisClient,
	provideRecordCache,
	provideBookCache,
	provideCustomerCache,
	providePublisher,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	customer.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appcustomer.NewAddCustomerUseCase,
	appcustomer.NewGetCustomerUseCase,
	appcustomer.NewFindCustomerUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewCustomerHandler,
)

// InitializeApp 组装完整的依赖链
// Repository ← Service ← UseCase ← Handler ← Engine ← Server
// 返回的cleanup按创建的逆序释放连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
		provideServer,
		newApp,
	)
	return nil, nil, nil
}
