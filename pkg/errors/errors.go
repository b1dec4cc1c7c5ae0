package errors

import (
	"errors"
	"fmt"
)

// Kind 错误分类，决定HTTP状态码
type Kind int

const (
	KindInternal   Kind = iota // 服务端故障（存储、缓存等）
	KindValidation             // 请求格式或字段校验失败
	KindConflict               // 唯一键冲突
	KindNotFound               // 记录不存在
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于日志与指标区分错误类型，Kind决定HTTP状态码
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使预定义错误经过Wrap后仍可用errors.Is判断
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Code == t.Code
}

// HTTPStatus 按错误分类返回HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return 400
	case KindConflict:
		return 422
	case KindNotFound:
		return 404
	default:
		return 500
	}
}

// New 创建新的AppError，Kind由错误码推导
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    kindOf(code),
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为内部错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Kind:    KindInternal,
		Err:     err,
	}
}

// WithCode 以指定错误码包装底层错误
func WithCode(code int, err error, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    kindOf(code),
		Err:     err,
	}
}

func kindOf(code int) Kind {
	switch code / 100 {
	case 400:
		return KindValidation
	case 422:
		return KindConflict
	case 404:
		return KindNotFound
	default:
		return KindInternal
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码前三位与HTTP状态码一致
// - 400xx: 参数校验失败
// - 404xx: 记录不存在
// - 422xx: 唯一键冲突
// - 500xx: 服务端错误（数据库异常、缓存异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 参数错误（40000-40099）
	ErrCodeBindError     = 40001 // 请求体解析失败
	ErrCodeInvalidFields = 40002 // 字段缺失或非法
	ErrCodeISBNMismatch  = 40003 // 路径与请求体ISBN不一致
	ErrCodeInvalidPrice  = 40004 // 价格格式错误
	ErrCodeISBNRequired  = 40005 // 缺少ISBN
	ErrCodeMissingField  = 40006 // 缺少必填字段
	ErrCodeInvalidEmail  = 40007 // 邮箱格式错误
	ErrCodeInvalidState  = 40008 // 州代码格式错误
	ErrCodeInvalidID     = 40009 // ID非法
	ErrCodeMissingUserID = 40010 // 缺少userId查询参数
	ErrCodeFieldTooLong  = 40011 // 字段超出长度上限

	// 资源错误（40400-40499）
	ErrCodeCustomerNotFound = 40401 // 客户不存在
	ErrCodeBookNotFound     = 40402 // 图书不存在

	// 冲突错误（42200-42299）
	ErrCodeUserIDDuplicate = 42201 // userId已存在
	ErrCodeISBNDuplicate   = 42202 // ISBN已存在
)

// =========================================
// 预定义错误
// =========================================

// ErrInternal 服务端错误返回给客户端的统一提示
var ErrInternal = New(ErrCodeInternal, "Internal server error")

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsKind 判断错误链中的AppError是否属于指定分类
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
