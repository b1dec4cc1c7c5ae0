package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/application/event"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// AddBookUseCase 新增图书用例
// 设计说明:
// 1. 校验与唯一性检查由领域服务完成
// 2. 用例负责编排:追踪、指标、事件发布
// 3. 事件在写入成功后发布,发布失败不影响结果
type AddBookUseCase struct {
	bookService book.Service
	events      event.Publisher
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(bookService book.Service, events event.Publisher) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// Execute 执行新增
// 返回的图书即存储的记录
func (uc *AddBookUseCase) Execute(ctx context.Context, b *book.Book) (result *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddBook")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 调用领域服务
	if err = uc.bookService.AddBook(ctx, b); err != nil {
		metrics.RecordFailure(metrics.KindBook, "add_book", err)
		return nil, err
	}

	// 2. 指标与事件
	metrics.RecordCreated(metrics.KindBook)
	event.Emit(ctx, uc.events, event.NewBookEvent(event.BookCreated, b))

	return b, nil
}
