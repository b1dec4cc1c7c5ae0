package customer

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/application/event"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

const tracerName = "bookstore-api/application/customer"

// AddCustomerUseCase 新增客户用例
// 设计说明：
// 1. Application层负责用例编排，校验与唯一性检查在领域服务
// 2. 创建成功后发布customer.created事件
type AddCustomerUseCase struct {
	customerService customer.Service
	events          event.Publisher
}

// NewAddCustomerUseCase 创建新增客户用例
func NewAddCustomerUseCase(customerService customer.Service, events event.Publisher) *AddCustomerUseCase {
	return &AddCustomerUseCase{
		customerService: customerService,
		events:          events,
	}
}

// Execute 执行新增
// 返回的客户记录带有存储生成的ID
func (uc *AddCustomerUseCase) Execute(ctx context.Context, c *customer.Customer) (result *customer.Customer, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddCustomer")
	defer func() { tracing.EndSpan(span, err) }()

	if err = uc.customerService.AddCustomer(ctx, c); err != nil {
		metrics.RecordFailure(metrics.KindCustomer, "add_customer", err)
		return nil, err
	}

	metrics.RecordCreated(metrics.KindCustomer)
	event.Emit(ctx, uc.events, event.NewCustomerEvent(event.CustomerCreated, c))

	return c, nil
}
