package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// GetBookUseCase 按ISBN查询图书用例(Cache-Aside)
// 1. 先查缓存
// 2. 未命中查数据库并回填
// 3. 缓存故障降级为直接查数据库
type GetBookUseCase struct {
	bookService book.Service
	cache       Cache
}

// NewGetBookUseCase 创建查询图书用例
func NewGetBookUseCase(bookService book.Service, cache Cache) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行查询
func (uc *GetBookUseCase) Execute(ctx context.Context, isbn string) (result *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBook")
	defer func() { tracing.EndSpan(span, err) }()

	if isbn == "" {
		return nil, book.ErrISBNRequired
	}

	cached, cerr := uc.cache.GetBook(ctx, isbn)
	switch {
	case cerr != nil:
		metrics.CacheResult(metrics.KindBook, "error")
		logger.Get().Warn().Err(cerr).Str("isbn", isbn).Msg("读取图书缓存失败")
	case cached != nil:
		metrics.CacheResult(metrics.KindBook, "hit")
		return cached, nil
	default:
		metrics.CacheResult(metrics.KindBook, "miss")
	}

	result, err = uc.bookService.GetBookByISBN(ctx, isbn)
	if err != nil {
		metrics.RecordFailure(metrics.KindBook, "get_book", err)
		return nil, err
	}

	if serr := uc.cache.SetBook(ctx, result); serr != nil {
		logger.Get().Warn().Err(serr).Str("isbn", isbn).Msg("回填图书缓存失败")
	}
	return result, nil
}
