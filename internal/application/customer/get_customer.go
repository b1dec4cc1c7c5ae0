package customer

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// Cache 客户读缓存端口，未命中返回(nil, nil)
type Cache interface {
	GetCustomer(ctx context.Context, id uint) (*customer.Customer, error)
	SetCustomer(ctx context.Context, c *customer.Customer) error
}

// NopCache 未启用Redis时使用
type NopCache struct{}

func (NopCache) GetCustomer(context.Context, uint) (*customer.Customer, error) { return nil, nil }
func (NopCache) SetCustomer(context.Context, *customer.Customer) error         { return nil }

// GetCustomerUseCase 按ID查询客户
// 客户记录创建后不再修改，缓存无需失效
type GetCustomerUseCase struct {
	customerService customer.Service
	cache           Cache
}

// NewGetCustomerUseCase 创建按ID查询用例
func NewGetCustomerUseCase(customerService customer.Service, cache Cache) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerService: customerService,
		cache:           cache,
	}
}

// Execute 执行查询
// rawID为路径参数原文，非数字返回ErrInvalidID
func (uc *GetCustomerUseCase) Execute(ctx context.Context, rawID string) (result *customer.Customer, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetCustomer")
	defer func() { tracing.EndSpan(span, err) }()

	id, err := customer.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	cached, cerr := uc.cache.GetCustomer(ctx, id)
	switch {
	case cerr != nil:
		metrics.CacheResult(metrics.KindCustomer, "error")
		logger.Get().Warn().Err(cerr).Uint("id", id).Msg("读取客户缓存失败")
	case cached != nil:
		metrics.CacheResult(metrics.KindCustomer, "hit")
		return cached, nil
	default:
		metrics.CacheResult(metrics.KindCustomer, "miss")
	}

	result, err = uc.customerService.GetCustomerByID(ctx, id)
	if err != nil {
		metrics.RecordFailure(metrics.KindCustomer, "get_customer", err)
		return nil, err
	}

	if serr := uc.cache.SetCustomer(ctx, result); serr != nil {
		logger.Get().Warn().Err(serr).Uint("id", id).Msg("回填客户缓存失败")
	}
	return result, nil
}

// FindCustomerUseCase 按userId查询客户
type FindCustomerUseCase struct {
	customerService customer.Service
}

// NewFindCustomerUseCase 创建按userId查询用例
func NewFindCustomerUseCase(customerService customer.Service) *FindCustomerUseCase {
	return &FindCustomerUseCase{customerService: customerService}
}

// Execute 执行查询
func (uc *FindCustomerUseCase) Execute(ctx context.Context, userID string) (result *customer.Customer, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "FindCustomer")
	defer func() { tracing.EndSpan(span, err) }()

	result, err = uc.customerService.GetCustomerByUserID(ctx, userID)
	if err != nil {
		metrics.RecordFailure(metrics.KindCustomer, "find_customer", err)
		return nil, err
	}
	return result, nil
}
