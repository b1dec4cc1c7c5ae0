package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// Cache 图书读缓存端口（persistence/redis.RecordCache实现）
// 未命中返回(nil, nil)
type Cache interface {
	GetBook(ctx context.Context, isbn string) (*book.Book, error)
	SetBook(ctx context.Context, b *book.Book) error
	DeleteBook(ctx context.Context, isbn string) error
}

// NopCache 未启用Redis时使用，永远未命中
type NopCache struct{}

func (NopCache) GetBook(context.Context, string) (*book.Book, error) { return nil, nil }
func (NopCache) SetBook(context.Context, *book.Book) error           { return nil }
func (NopCache) DeleteBook(context.Context, string) error            { return nil }

const tracerName = "bookstore-api/application/book"
