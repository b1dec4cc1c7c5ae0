package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// RequestIDKey gin上下文中请求ID的键（由日志中间件写入）
const RequestIDKey = "request_id"

// ErrorBody 统一错误响应结构
// 所有失败响应均为 {"message": "..."}
type ErrorBody struct {
	Message string `json:"message"`
}

// Success 200响应，直接返回业务数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应，附带Location头
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	b, err := h.getBook.Execute(ctx, isbn)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	_ = c.Error(err)

	status := appErr.HTTPStatus()
	message := appErr.Message

	// 服务端错误记录详细信息，客户端只看到通用提示
	if appErr.Kind == apperrors.KindInternal {
		logger.Get().Error().
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("trace_id", tracing.ExtractTraceID(c.Request.Context())).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("code", appErr.Code).
			Msg(appErr.Message)
		message = apperrors.ErrInternal.Message
	}

	c.JSON(status, ErrorBody{Message: message})
}
