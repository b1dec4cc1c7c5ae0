package customer

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Customer 客户实体（聚合根）
// DDD设计说明：
// 1. ID由存储生成，创建后不可修改
// 2. UserID是邮箱形式的业务唯一键（数据库UNIQUE索引保证）
// 3. Address2可选，缺省为nil（存储为NULL）
type Customer struct {
	ID       uint
	UserID   string
	Name     string
	Phone    string
	Address  string
	Address2 *string
	City     string
	State    string
	Zipcode  string
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	stateRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// IsValidEmail userId必须是邮箱形式
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidState 州代码为两个大写字母
func IsValidState(s string) bool {
	return stateRe.MatchString(s)
}

// requiredFields 按校验顺序排列的必填字段（名称与请求字段一致）
func (c *Customer) requiredFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"userId", c.UserID},
		{"name", c.Name},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"state", c.State},
		{"zipcode", c.Zipcode},
	}
}

// maxLen 各字段长度上限（字符数），与customers表列宽一致
var maxLen = map[string]int{
	"userId":   255,
	"name":     255,
	"phone":    50,
	"address":  255,
	"address2": 255,
	"city":     100,
	"zipcode":  20,
}

// Validate 校验客户记录
// 顺序：必填字段（报告第一个缺失项）→ 长度上限 → 邮箱格式 → 州代码格式
func (c *Customer) Validate() error {
	fields := c.requiredFields()
	for _, f := range fields {
		if f.value == "" {
			return ErrMissingField(f.name)
		}
	}
	if c.Address2 != nil {
		fields = append(fields, struct{ name, value string }{"address2", *c.Address2})
	}
	for _, f := range fields {
		if limit, ok := maxLen[f.name]; ok && utf8.RuneCountInString(f.value) > limit {
			return ErrFieldTooLong(f.name)
		}
	}
	if !IsValidEmail(c.UserID) {
		return ErrInvalidEmail
	}
	if !IsValidState(c.State) {
		return ErrInvalidState
	}
	return nil
}

// ParseID 解析路径中的客户ID，非数字返回ErrInvalidID
func ParseID(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
