package customer

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 客户领域错误定义
var (
	ErrInvalidEmail     = apperrors.New(apperrors.ErrCodeInvalidEmail, "Invalid email format.")
	ErrInvalidState     = apperrors.New(apperrors.ErrCodeInvalidState, "Invalid state format.")
	ErrInvalidID        = apperrors.New(apperrors.ErrCodeInvalidID, "Invalid or missing ID.")
	ErrMissingUserID    = apperrors.New(apperrors.ErrCodeMissingUserID, "Missing userId query parameter.")
	ErrUserIDDuplicate  = apperrors.New(apperrors.ErrCodeUserIDDuplicate, "This user ID already exists in the system.")
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "Customer not found.")
)

// ErrMissingField 缺少必填字段
func ErrMissingField(field string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeMissingField, "Missing required field: "+field)
}

// ErrFieldTooLong 字段超出列宽
func ErrFieldTooLong(field string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeFieldTooLong, "Field too long: "+field)
}
