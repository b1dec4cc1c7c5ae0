package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// RecordCache 记录缓存（Cache-Aside）
// 设计说明：
// 1. 先查缓存，未命中再查数据库并回填
// 2. 更新数据库后删除缓存，下次查询重新加载
// 3. Key设计：book:{isbn}、customer:{id}
// 4. Redis故障时熔断，调用方直接降级为查数据库
type RecordCache struct {
	client  redis.Cmdable
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewRecordCache 创建记录缓存
func NewRecordCache(client redis.Cmdable, ttl time.Duration) *RecordCache {
	return &RecordCache{
		client:  client,
		ttl:     ttl,
		breaker: circuitbreaker.New("redis", circuitbreaker.DefaultConfig()),
	}
}

// GetBook 获取图书缓存，未命中返回(nil, nil)
func (c *RecordCache) GetBook(ctx context.Context, isbn string) (*book.Book, error) {
	var b book.Book
	hit, err := c.get(ctx, bookKey(isbn), &b)
	if err != nil || !hit {
		return nil, err
	}
	return &b, nil
}

// SetBook 写入图书缓存
func (c *RecordCache) SetBook(ctx context.Context, b *book.Book) error {
	return c.set(ctx, bookKey(b.ISBN), b)
}

// DeleteBook 删除图书缓存
func (c *RecordCache) DeleteBook(ctx context.Context, isbn string) error {
	err := c.breaker.Execute(func() error {
		return c.client.Del(ctx, bookKey(isbn)).Err()
	})
	if err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "删除缓存失败")
	}
	return nil
}

// GetCustomer 获取客户缓存，未命中返回(nil, nil)
func (c *RecordCache) GetCustomer(ctx context.Context, id uint) (*customer.Customer, error) {
	var cu customer.Customer
	hit, err := c.get(ctx, customerKey(id), &cu)
	if err != nil || !hit {
		return nil, err
	}
	return &cu, nil
}

// SetCustomer 写入客户缓存
func (c *RecordCache) SetCustomer(ctx context.Context, cu *customer.Customer) error {
	return c.set(ctx, customerKey(cu.ID), cu)
}

func (c *RecordCache) get(ctx context.Context, key string, dst any) (bool, error) {
	var (
		val []byte
		hit bool
	)
	// 未命中(redis.Nil)不计为失败
	err := c.breaker.Execute(func() error {
		var err error
		val, err = c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		hit = err == nil
		return err
	})
	if err != nil {
		return false, apperrors.WithCode(apperrors.ErrCodeRedisError, err, "获取缓存失败")
	}
	if !hit {
		return false, nil
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, apperrors.WithCode(apperrors.ErrCodeRedisError, err, "反序列化缓存失败")
	}
	return true, nil
}

func (c *RecordCache) set(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "序列化缓存失败")
	}
	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, key, val, c.ttl).Err()
	})
	if err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "设置缓存失败")
	}
	return nil
}

func bookKey(isbn string) string {
	return "book:" + isbn
}

func customerKey(id uint) string {
	return fmt.Sprintf("customer:%d", id)
}
