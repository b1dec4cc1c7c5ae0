// Package validator 配置gin的请求校验引擎(go-playground/validator)
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// ErrInvalidBody 请求体不是合法JSON或字段类型不匹配
var ErrInvalidBody = apperrors.New(apperrors.ErrCodeBindError, "Invalid request body.")

var once sync.Once

// Setup 让FieldError.Field()返回json字段名(userId而不是UserID)
// 可重复调用
func Setup() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonTagName)
		}
	})
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// MissingField 返回第一个未通过required校验的字段名
// 校验错误按结构体字段顺序排列
func MissingField(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "", false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fe.Field(), true
		}
	}
	return "", false
}
