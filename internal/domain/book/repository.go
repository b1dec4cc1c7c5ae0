package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(mysql / memory)
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	// ISBN已存在时返回ErrISBNDuplicate(唯一索引兜底)
	Create(ctx context.Context, book *Book) error

	// FindByISBN 根据ISBN查找图书
	// 不存在时返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// LockByISBN 悲观锁查询图书(SELECT ... FOR UPDATE)
	// 必须在事务内调用,不存在时返回ErrBookNotFound
	LockByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 覆盖除ISBN外的全部字段
	Update(ctx context.Context, book *Book) error
}

// Transactor 事务执行器
// fn中使用的ctx携带事务,仓储通过ctx取得同一事务连接
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
