package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-api/internal/application/event"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// CacheRedeleteDelay 更新后第二次删除缓存的延迟
// 需大于一次"查库+回填"的耗时，才能清掉并发读回填的旧值
const CacheRedeleteDelay = 500 * time.Millisecond

// UpdateBookUseCase 覆盖图书用例
// 写入成功后删除缓存（延迟双删）并发布book.updated事件
type UpdateBookUseCase struct {
	bookService   book.Service
	cache         Cache
	events        event.Publisher
	redeleteAfter time.Duration
}

// NewUpdateBookUseCase 创建覆盖图书用例
func NewUpdateBookUseCase(bookService book.Service, cache Cache, events event.Publisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:   bookService,
		cache:         cache,
		events:        events,
		redeleteAfter: CacheRedeleteDelay,
	}
}

// Execute 执行覆盖，返回提交的记录
func (uc *UpdateBookUseCase) Execute(ctx context.Context, isbn string, b *book.Book) (result *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateBook")
	defer func() { tracing.EndSpan(span, err) }()

	if err = uc.bookService.UpdateBook(ctx, isbn, b); err != nil {
		metrics.RecordFailure(metrics.KindBook, "update_book", err)
		return nil, err
	}

	// 并发读可能在第一次删除后回填旧值，延迟后再删一次
	// 两次删除都失败时旧值最多保留一个TTL
	uc.invalidate(ctx, isbn)
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(uc.redeleteAfter, func() {
		ctx, cancel := context.WithTimeout(bg, 2*time.Second)
		defer cancel()
		uc.invalidate(ctx, isbn)
	})
	event.Emit(ctx, uc.events, event.NewBookEvent(event.BookUpdated, b))

	return b, nil
}

func (uc *UpdateBookUseCase) invalidate(ctx context.Context, isbn string) {
	if err := uc.cache.DeleteBook(ctx, isbn); err != nil {
		logger.Get().Warn().Err(err).Str("isbn", isbn).Msg("删除图书缓存失败")
	}
}
