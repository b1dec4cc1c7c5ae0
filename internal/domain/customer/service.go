package customer

import (
	"context"
	"errors"
)

// Service 客户领域服务
// 设计说明：
// 1. Service负责字段校验与userId唯一性检查
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// AddCustomer 新增客户，成功后customer.ID为生成的ID
	AddCustomer(ctx context.Context, customer *Customer) error

	// GetCustomerByID 根据ID获取客户
	GetCustomerByID(ctx context.Context, id uint) (*Customer, error)

	// GetCustomerByUserID 根据userId获取客户
	GetCustomerByUserID(ctx context.Context, userID string) (*Customer, error)
}

type service struct {
	repo Repository
}

// NewService 创建客户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddCustomer 新增客户
// 业务规则：
// 1. 必填字段、邮箱格式、州代码校验（先于存储访问）
// 2. userId唯一（查询检查 + 数据库UNIQUE索引兜底）
func (s *service) AddCustomer(ctx context.Context, customer *Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	existing, err := s.repo.FindByUserID(ctx, customer.UserID)
	if err == nil && existing != nil {
		return ErrUserIDDuplicate
	}
	if err != nil && !errors.Is(err, ErrCustomerNotFound) {
		return err
	}

	// 空字符串的address2按未填写处理，存为NULL
	if customer.Address2 != nil && *customer.Address2 == "" {
		customer.Address2 = nil
	}
	return s.repo.Create(ctx, customer)
}

// GetCustomerByID 根据ID获取客户
func (s *service) GetCustomerByID(ctx context.Context, id uint) (*Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// GetCustomerByUserID 根据userId获取客户
func (s *service) GetCustomerByUserID(ctx context.Context, userID string) (*Customer, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !IsValidEmail(userID) {
		return nil, ErrInvalidEmail
	}
	return s.repo.FindByUserID(ctx, userID)
}
