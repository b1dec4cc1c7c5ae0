package book

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrInvalidFields 必填字段缺失或非法
	ErrInvalidFields = apperrors.New(apperrors.ErrCodeInvalidFields, "Invalid or missing fields.")

	// ErrISBNMismatch 路径中的ISBN与请求体不一致
	ErrISBNMismatch = apperrors.New(apperrors.ErrCodeISBNMismatch, "ISBN in URL and body do not match.")

	// ErrInvalidPrice 价格格式错误
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "Invalid price format.")

	// ErrISBNRequired 缺少ISBN
	ErrISBNRequired = apperrors.New(apperrors.ErrCodeISBNRequired, "ISBN is required.")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "This ISBN already exists in the system.")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found.")
)
