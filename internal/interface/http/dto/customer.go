package dto

import "github.com/xiebiao/bookstore-api/internal/domain/customer"

// CustomerRequest 新增客户请求
// 字段顺序即必填校验顺序,缺失时报告第一个缺失字段
type CustomerRequest struct {
	UserID   string  `json:"userId" binding:"required" example:"ann@example.com"`
	Name     string  `json:"name" binding:"required" example:"Ann Smith"`
	Phone    string  `json:"phone" binding:"required" example:"+14155550100"`
	Address  string  `json:"address" binding:"required" example:"1 Market St"`
	Address2 *string `json:"address2" example:"Suite 200"`
	City     string  `json:"city" binding:"required" example:"San Francisco"`
	State    string  `json:"state" binding:"required" example:"CA"`
	Zipcode  string  `json:"zipcode" binding:"required" example:"94105"`
}

// ToEntity HTTP DTO → 领域实体
func (r *CustomerRequest) ToEntity() *customer.Customer {
	return &customer.Customer{
		UserID:   r.UserID,
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
		Address2: r.Address2,
		City:     r.City,
		State:    r.State,
		Zipcode:  r.Zipcode,
	}
}

// CustomerResponse 客户响应,address2缺省时输出null
type CustomerResponse struct {
	ID       uint    `json:"id" example:"1"`
	UserID   string  `json:"userId" example:"ann@example.com"`
	Name     string  `json:"name" example:"Ann Smith"`
	Phone    string  `json:"phone" example:"+14155550100"`
	Address  string  `json:"address" example:"1 Market St"`
	Address2 *string `json:"address2" example:"Suite 200"`
	City     string  `json:"city" example:"San Francisco"`
	State    string  `json:"state" example:"CA"`
	Zipcode  string  `json:"zipcode" example:"94105"`
}

// NewCustomerResponse 领域实体 → HTTP DTO
func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:       c.ID,
		UserID:   c.UserID,
		Name:     c.Name,
		Phone:    c.Phone,
		Address:  c.Address,
		Address2: c.Address2,
		City:     c.City,
		State:    c.State,
		Zipcode:  c.Zipcode,
	}
}
