package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// customerRepository 客户仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/customer/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如userId重复），转换为业务错误
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

// Create 创建客户
// 1. userId唯一性最终由数据库UNIQUE索引保证
// 2. 捕获MySQL的Duplicate Entry错误，转换为ErrUserIDDuplicate
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := &CustomerModel{
		UserID:   c.UserID,
		Name:     c.Name,
		Phone:    c.Phone,
		Address:  c.Address,
		Address2: c.Address2,
		City:     c.City,
		State:    c.State,
		Zipcode:  c.Zipcode,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return customer.ErrUserIDDuplicate
		}
		return apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "创建客户失败")
	}

	// 回填自增ID（GORM自动填充）
	c.ID = model.ID
	return nil
}

// FindByID 根据ID查找客户
func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "查询客户失败")
	}
	return toCustomerEntity(&model), nil
}

// FindByUserID 根据userId查找客户
// user_id字段有UNIQUE索引，使用First只取一条
func (r *customerRepository) FindByUserID(ctx context.Context, userID string) (*customer.Customer, error) {
	var model CustomerModel
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "查询客户失败")
	}
	return toCustomerEntity(&model), nil
}

// toCustomerEntity GORM模型 → 领域实体
func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:       model.ID,
		UserID:   model.UserID,
		Name:     model.Name,
		Phone:    model.Phone,
		Address:  model.Address,
		Address2: model.Address2,
		City:     model.City,
		State:    model.State,
		Zipcode:  model.Zipcode,
	}
}
