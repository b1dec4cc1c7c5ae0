// Package event 记录变更事件
//
// 写操作成功后由用例发布事件，订阅方按routing key（book.*、customer.*）绑定队列。
// 发布失败只记录日志：写入已经提交，事件丢失不影响请求结果。
package event

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

// Routing keys
const (
	BookCreated     = "book.created"
	BookUpdated     = "book.updated"
	CustomerCreated = "customer.created"
)

// Publisher 事件发布端口（pkg/mq.Publisher实现）
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// NopPublisher 未启用消息队列时使用
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// RecordEvent 事件消息体
type RecordEvent struct {
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Record     interface{} `json:"record"`
}

// BookRecord 事件中的图书快照
type BookRecord struct {
	ISBN        string `json:"ISBN"`
	Title       string `json:"title"`
	Author      string `json:"Author"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

// CustomerRecord 事件中的客户快照
type CustomerRecord struct {
	ID       uint    `json:"id"`
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	Address2 *string `json:"address2"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Zipcode  string  `json:"zipcode"`
}

// NewBookEvent 构造图书事件
func NewBookEvent(eventType string, b *book.Book) RecordEvent {
	return RecordEvent{
		Type:       eventType,
		Key:        b.ISBN,
		OccurredAt: time.Now().UTC(),
		Record: BookRecord{
			ISBN:        b.ISBN,
			Title:       b.Title,
			Author:      b.Author,
			Description: b.Description,
			Genre:       b.Genre,
			Price:       b.Price.String(),
			Quantity:    b.Quantity,
		},
	}
}

// NewCustomerEvent 构造客户事件
func NewCustomerEvent(eventType string, c *customer.Customer) RecordEvent {
	return RecordEvent{
		Type:       eventType,
		Key:        c.UserID,
		OccurredAt: time.Now().UTC(),
		Record: CustomerRecord{
			ID:       c.ID,
			UserID:   c.UserID,
			Name:     c.Name,
			Phone:    c.Phone,
			Address:  c.Address,
			Address2: c.Address2,
			City:     c.City,
			State:    c.State,
			Zipcode:  c.Zipcode,
		},
	}
}

// Emit 发布事件，失败只记录warn日志
func Emit(ctx context.Context, p Publisher, evt RecordEvent) {
	if err := p.Publish(ctx, evt.Type, evt); err != nil {
		logger.Get().Warn().
			Err(err).
			Str("event", evt.Type).
			Str("key", evt.Key).
			Msg("记录事件发布失败")
	}
}
