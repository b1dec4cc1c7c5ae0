package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-api/internal/interface/http/validator"
)

// RegisterRoutes 注册记录接口路由
func RegisterRoutes(r gin.IRouter, bookHandler *BookHandler, customerHandler *CustomerHandler) {
	validator.Setup()

	// 图书模块
	books := r.Group("/books")
	{
		books.POST("", bookHandler.AddBook)
		books.GET("/:isbn", bookHandler.GetBook)
		books.GET("/isbn/:isbn", bookHandler.GetBook)
		books.PUT("/:isbn", bookHandler.UpdateBook)
	}

	// 客户模块
	customers := r.Group("/customers")
	{
		customers.POST("", customerHandler.AddCustomer)
		customers.GET("", customerHandler.FindCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
	}
}
