package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验与唯一性检查
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 新增图书
	// 业务规则:
	// - 字段校验先于任何存储访问
	// - ISBN不能重复
	AddBook(ctx context.Context, book *Book) error

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// UpdateBook 覆盖图书信息
	// 业务规则:
	// - 路径ISBN必须与记录ISBN一致
	// - 查询与覆盖在同一事务内完成
	UpdateBook(ctx context.Context, isbn string, book *Book) error
}

// service 领域服务实现
type service struct {
	repo Repository
	tx   Transactor
}

// NewService 创建图书领域服务
func NewService(repo Repository, tx Transactor) Service {
	return &service{repo: repo, tx: tx}
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, book *Book) error {
	// 1. 字段校验
	if err := book.Validate(); err != nil {
		return err
	}

	// 2. 检查ISBN是否已存在
	existing, err := s.repo.FindByISBN(ctx, book.ISBN)
	if err == nil && existing != nil {
		return ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return err
	}

	// 3. 持久化(并发插入由唯一索引兜底,仓储返回ErrISBNDuplicate)
	return s.repo.Create(ctx, book)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	if isbn == "" {
		return nil, ErrISBNRequired
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// UpdateBook 覆盖图书信息
func (s *service) UpdateBook(ctx context.Context, isbn string, book *Book) error {
	// 1. 必填字段
	if !book.hasAllFields() {
		return ErrInvalidFields
	}

	// 2. 路径与请求体ISBN一致
	if isbn != book.ISBN {
		return ErrISBNMismatch
	}

	// 3. 价格格式
	if !book.Price.Valid() {
		return ErrInvalidPrice
	}

	// 4. 加锁查询并覆盖
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.LockByISBN(ctx, isbn)
		if err != nil {
			return err
		}
		current.ApplyUpdate(book)
		return s.repo.Update(ctx, current)
	})
}
