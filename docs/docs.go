// Package docs Swagger文档模板
//
// 内容与handler包中的swag注释保持一致，修改接口后需同步更新
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "post": {
                "description": "字段校验 → ISBN唯一性检查 → 写入",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "新增图书",
                "parameters": [
                    {
                        "description": "图书信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.BookRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.BookResponse"},
                        "headers": {"Location": {"type": "string", "description": "/books/{ISBN}"}}
                    },
                    "400": {"description": "字段缺失或价格格式错误", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "ISBN已存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/books/isbn/{isbn}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "查询图书",
                "parameters": [
                    {"type": "string", "description": "ISBN", "name": "isbn", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "图书不存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/books/{isbn}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "查询图书",
                "parameters": [
                    {"type": "string", "description": "ISBN", "name": "isbn", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "图书不存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "put": {
                "description": "路径ISBN必须与请求体ISBN一致,响应为提交的记录",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "覆盖图书",
                "parameters": [
                    {"type": "string", "description": "ISBN", "name": "isbn", "in": "path", "required": true},
                    {
                        "description": "图书信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.BookRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "字段缺失、ISBN不一致或价格格式错误", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "图书不存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["客户"],
                "summary": "按userId查询客户",
                "parameters": [
                    {"type": "string", "description": "客户邮箱", "name": "userId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CustomerResponse"}},
                    "400": {"description": "缺少userId或格式错误", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "客户不存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["客户"],
                "summary": "新增客户",
                "parameters": [
                    {
                        "description": "客户信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CustomerRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.CustomerResponse"},
                        "headers": {"Location": {"type": "string", "description": "/customers/{id}"}}
                    },
                    "400": {"description": "缺少字段、邮箱或州代码格式错误", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "userId已存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["客户"],
                "summary": "按ID查询客户",
                "parameters": [
                    {"type": "string", "description": "客户ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CustomerResponse"}},
                    "400": {"description": "ID非数字", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "客户不存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BookRequest": {
            "type": "object",
            "required": ["Author", "ISBN", "description", "genre", "price", "quantity", "title"],
            "properties": {
                "Author": {"type": "string", "example": "Alan Donovan"},
                "ISBN": {"type": "string", "example": "978-0134190440"},
                "description": {"type": "string", "example": "Go from first principles"},
                "genre": {"type": "string", "example": "non-fiction"},
                "price": {"type": "string", "example": "39.99"},
                "quantity": {"type": "integer", "example": 5},
                "title": {"type": "string", "example": "The Go Programming Language"}
            }
        },
        "dto.BookResponse": {
            "type": "object",
            "properties": {
                "Author": {"type": "string", "example": "Alan Donovan"},
                "ISBN": {"type": "string", "example": "978-0134190440"},
                "description": {"type": "string", "example": "Go from first principles"},
                "genre": {"type": "string", "example": "non-fiction"},
                "price": {"type": "string", "example": "39.99"},
                "quantity": {"type": "integer", "example": 5},
                "title": {"type": "string", "example": "The Go Programming Language"}
            }
        },
        "dto.CustomerRequest": {
            "type": "object",
            "required": ["address", "city", "name", "phone", "state", "userId", "zipcode"],
            "properties": {
                "address": {"type": "string", "example": "1 Market St"},
                "address2": {"type": "string", "example": "Suite 200"},
                "city": {"type": "string", "example": "San Francisco"},
                "name": {"type": "string", "example": "Ann Smith"},
                "phone": {"type": "string", "example": "+14155550100"},
                "state": {"type": "string", "example": "CA"},
                "userId": {"type": "string", "example": "ann@example.com"},
                "zipcode": {"type": "string", "example": "94105"}
            }
        },
        "dto.CustomerResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string", "example": "1 Market St"},
                "address2": {"type": "string", "example": "Suite 200"},
                "city": {"type": "string", "example": "San Francisco"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Ann Smith"},
                "phone": {"type": "string", "example": "+14155550100"},
                "state": {"type": "string", "example": "CA"},
                "userId": {"type": "string", "example": "ann@example.com"},
                "zipcode": {"type": "string", "example": "94105"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookstore Records API",
	Description:      "图书与客户记录的创建、查询与更新",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
