package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/bookstore-api/internal/application/customer"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/validator"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// CustomerHandler 客户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
type CustomerHandler struct {
	addCustomerUseCase  *appcustomer.AddCustomerUseCase
	getCustomerUseCase  *appcustomer.GetCustomerUseCase
	findCustomerUseCase *appcustomer.FindCustomerUseCase
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(
	addCustomerUseCase *appcustomer.AddCustomerUseCase,
	getCustomerUseCase *appcustomer.GetCustomerUseCase,
	findCustomerUseCase *appcustomer.FindCustomerUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		addCustomerUseCase:  addCustomerUseCase,
		getCustomerUseCase:  getCustomerUseCase,
		findCustomerUseCase: findCustomerUseCase,
	}
}

// AddCustomer 新增客户
// @Summary      新增客户
// @Tags         客户
// @Accept       json
// @Produce      json
// @Param        request body dto.CustomerRequest true "客户信息"
// @Success      201 {object} dto.CustomerResponse
// @Header       201 {string} Location "/customers/{id}"
// @Failure      400 {object} response.ErrorBody "缺少字段、邮箱或州代码格式错误"
// @Failure      422 {object} response.ErrorBody "userId已存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /customers [post]
func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	// 1. 参数绑定：报告第一个缺失的必填字段
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if field, ok := validator.MissingField(err); ok {
			response.Error(c, customer.ErrMissingField(field))
			return
		}
		response.Error(c, validator.ErrInvalidBody)
		return
	}

	// 2. 调用应用层用例
	result, err := h.addCustomerUseCase.Execute(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 201 + Location
	response.Created(c, "/customers/"+strconv.FormatUint(uint64(result.ID), 10), dto.NewCustomerResponse(result))
}

// GetCustomer 按ID查询客户
// @Summary      按ID查询客户
// @Tags         客户
// @Produce      json
// @Param        id path string true "客户ID"
// @Success      200 {object} dto.CustomerResponse
// @Failure      400 {object} response.ErrorBody "ID非数字"
// @Failure      404 {object} response.ErrorBody "客户不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.getCustomerUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerResponse(result))
}

// FindCustomer 按userId查询客户
// @Summary      按userId查询客户
// @Tags         客户
// @Produce      json
// @Param        userId query string true "客户邮箱"
// @Success      200 {object} dto.CustomerResponse
// @Failure      400 {object} response.ErrorBody "缺少userId或格式错误"
// @Failure      404 {object} response.ErrorBody "客户不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /customers [get]
func (h *CustomerHandler) FindCustomer(c *gin.Context) {
	result, err := h.findCustomerUseCase.Execute(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerResponse(result))
}
