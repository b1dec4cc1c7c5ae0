package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	addBookUseCase    *appbook.AddBookUseCase
	getBookUseCase    *appbook.GetBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:    addBookUseCase,
		getBookUseCase:    getBookUseCase,
		updateBookUseCase: updateBookUseCase,
	}
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  字段校验 → ISBN唯一性检查 → 写入
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Header       201 {string} Location "/books/{ISBN}"
// @Failure      400 {object} response.ErrorBody "字段缺失或价格格式错误"
// @Failure      422 {object} response.ErrorBody "ISBN已存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定(必填字段由binding tag校验)
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, book.ErrInvalidFields)
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 201 + Location
	response.Created(c, "/books/"+url.PathEscape(result.ISBN), dto.NewBookResponse(result))
}

// GetBook 按ISBN查询图书
// /books/:isbn 与 /books/isbn/:isbn 共用
// @Summary      查询图书
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /books/{isbn} [get]
// @Router       /books/isbn/{isbn} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(result))
}

// UpdateBook 覆盖图书(ISBN除外)
// @Summary      覆盖图书
// @Description  路径ISBN必须与请求体ISBN一致,响应为提交的记录
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        isbn    path string          true "ISBN"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "字段缺失、ISBN不一致或价格格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /books/{isbn} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, book.ErrInvalidFields)
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), c.Param("isbn"), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(result))
}
