package book

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. ISBN是业务主键,创建后不可修改
// 2. 价格以十进制文本保存(Price),避免浮点精度问题
// 3. 领域实体不依赖GORM tag,映射由infrastructure层处理
type Book struct {
	ISBN        string
	Title       string
	Author      string
	Description string
	Genre       string
	Price       Price
	Quantity    int
}

// Price 价格的十进制文本表示,如 "12"、"12.5"、"12.50"
type Price string

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// MaxPriceIntDigits 价格整数部分的最大位数(DECIMAL(10,2))
const MaxPriceIntDigits = 8

// Valid 非负整数,最多两位小数,整数部分(去掉前导0)不超过8位
func (p Price) Valid() bool {
	s := string(p)
	if !priceRe.MatchString(s) {
		return false
	}
	intPart, _, _ := strings.Cut(s, ".")
	return len(strings.TrimLeft(intPart, "0")) <= MaxPriceIntDigits
}

func (p Price) String() string {
	return string(p)
}

// hasAllFields 必填文本字段均非空
func (b *Book) hasAllFields() bool {
	for _, v := range []string{b.ISBN, b.Title, b.Author, b.Description, b.Genre, string(b.Price)} {
		if v == "" {
			return false
		}
	}
	return true
}

// 文本字段长度上限,与books表列宽一致(字符数,description为字节数)
const (
	MaxISBNLen        = 20
	MaxTitleLen       = 255
	MaxAuthorLen      = 255
	MaxGenreLen       = 100
	MaxDescriptionLen = 65535
)

// withinLimits 文本字段不超过列宽
func (b *Book) withinLimits() bool {
	return utf8.RuneCountInString(b.ISBN) <= MaxISBNLen &&
		utf8.RuneCountInString(b.Title) <= MaxTitleLen &&
		utf8.RuneCountInString(b.Author) <= MaxAuthorLen &&
		utf8.RuneCountInString(b.Genre) <= MaxGenreLen &&
		len(b.Description) <= MaxDescriptionLen
}

// Validate 校验图书记录(创建与更新共用)
// 规则:
// - ISBN、title、Author、description、genre、price 均不能为空
// - 文本字段不超过列宽
// - 价格必须匹配 ^\d+(\.\d{1,2})?$,且不超过DECIMAL(10,2)
func (b *Book) Validate() error {
	if !b.hasAllFields() || !b.withinLimits() {
		return ErrInvalidFields
	}
	if !b.Price.Valid() {
		return ErrInvalidPrice
	}
	return nil
}

// ApplyUpdate 用新记录覆盖除ISBN外的全部字段
func (b *Book) ApplyUpdate(src *Book) {
	b.Title = src.Title
	b.Author = src.Author
	b.Description = src.Description
	b.Genre = src.Genre
	b.Price = src.Price
	b.Quantity = src.Quantity
}
