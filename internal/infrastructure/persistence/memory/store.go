// Package memory 内存存储实现，用于测试和 store.driver=memory 的本地运行。
// 与MySQL实现保持相同的唯一性语义：ISBN与userId重复插入时返回冲突错误。
package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
)

// Store 进程内记录存储
type Store struct {
	mu        sync.RWMutex
	books     map[string]book.Book
	customers map[uint]customer.Customer
	byUserID  map[string]uint
	nextID    uint

	txMu sync.Mutex
}

// NewStore 创建空存储
func NewStore() *Store {
	return &Store{
		books:     make(map[string]book.Book),
		customers: make(map[uint]customer.Customer),
		byUserID:  make(map[string]uint),
	}
}

// Books 图书仓储视图
func (s *Store) Books() book.Repository {
	return &bookRepository{s: s}
}

// Customers 客户仓储视图
func (s *Store) Customers() customer.Repository {
	return &customerRepository{s: s}
}

// Transaction 串行执行事务函数
// 内存实现没有回滚，只保证同一时刻只有一个事务在执行
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
