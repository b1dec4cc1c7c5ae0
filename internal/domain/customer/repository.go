package customer

import (
	"context"
)

// Repository 客户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql与memory
// 3. 便于单元测试（Mock此接口）
type Repository interface {
	// Create 创建客户，成功后回填ID
	// 注意：如果userId已存在，应返回ErrUserIDDuplicate
	Create(ctx context.Context, customer *Customer) error

	// FindByID 根据ID查找客户
	// 如果不存在，返回ErrCustomerNotFound
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindByUserID 根据userId查找客户
	// 如果不存在，返回ErrCustomerNotFound
	FindByUserID(ctx context.Context, userID string) (*Customer, error)
}
