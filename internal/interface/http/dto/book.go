package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// PriceText 价格文本
// 请求中可以是JSON字符串("12.50")或数字(12.5),统一保存为文本再做格式校验;
// 响应中总是输出为字符串
type PriceText string

var errPriceType = errors.New("price must be a string or number")

// UnmarshalJSON 接受字符串或数字,null视为缺失
// 数字保留原始写法(12.50仍为"12.50"),指数形式(1e3)展开为十进制文本("1000")
func (p *PriceText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errPriceType
	}
	text := n.String()
	if bytes.ContainsAny(data, "eE") {
		f, err := n.Float64()
		if err != nil {
			return errPriceType
		}
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}
	*p = PriceText(text)
	return nil
}

// BookRequest 新增/覆盖图书请求
// 字段名与既有客户端保持一致(ISBN、Author大写)
// quantity使用指针区分"缺失"与0
type BookRequest struct {
	ISBN        string    `json:"ISBN" binding:"required" example:"978-0134190440"`
	Title       string    `json:"title" binding:"required" example:"The Go Programming Language"`
	Author      string    `json:"Author" binding:"required" example:"Alan Donovan"`
	Description string    `json:"description" binding:"required" example:"Go from first principles"`
	Genre       string    `json:"genre" binding:"required" example:"non-fiction"`
	Price       PriceText `json:"price" binding:"required" swaggertype:"string" example:"39.99"`
	Quantity    *int      `json:"quantity" binding:"required" example:"5"`
}

// ToEntity HTTP DTO → 领域实体
func (r *BookRequest) ToEntity() *book.Book {
	b := &book.Book{
		ISBN:        r.ISBN,
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Genre:       r.Genre,
		Price:       book.Price(r.Price),
	}
	if r.Quantity != nil {
		b.Quantity = *r.Quantity
	}
	return b
}

// BookResponse 图书响应
type BookResponse struct {
	ISBN        string `json:"ISBN" example:"978-0134190440"`
	Title       string `json:"title" example:"The Go Programming Language"`
	Author      string `json:"Author" example:"Alan Donovan"`
	Description string `json:"description" example:"Go from first principles"`
	Genre       string `json:"genre" example:"non-fiction"`
	Price       string `json:"price" example:"39.99"`
	Quantity    int    `json:"quantity" example:"5"`
}

// NewBookResponse 领域实体 → HTTP DTO
func NewBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Genre:       b.Genre,
		Price:       b.Price.String(),
		Quantity:    b.Quantity,
	}
}
