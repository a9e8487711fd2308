// Package docs Swagger文档（swag init格式）
// 修改handler上的注释后执行 `swag init -g cmd/api/main.go` 重新生成
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
        "/api/v1/books": {
            "get": {
                "description": "按添加顺序返回全部图书；存储损坏或不可读时返回空列表",
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书列表",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "object",
                                            "properties": {
                                                "list": {"type": "array", "items": {"$ref": "#/definitions/dto.BookItem"}},
                                                "total": {"type": "integer"}
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "description": "三个字段去除首尾空白后都不能为空",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "添加图书",
                "parameters": [
                    {
                        "description": "图书信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AddBookRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.AddBookResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/books/{isbn}": {
            "delete": {
                "description": "删除所有ISBN精确匹配的图书；没有匹配时同样返回成功",
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "删除图书",
                "parameters": [
                    {"type": "string", "description": "ISBN", "name": "isbn", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.DeleteBookResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/alert": {
            "get": {
                "description": "没有可见提示时data为null",
                "produces": ["application/json"],
                "tags": ["提示"],
                "summary": "当前提示",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.AlertResponse"}}}
                            ]
                        }
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["提示"],
                "summary": "关闭提示",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AddBookRequest": {
            "type": "object",
            "properties": {
                "author": {"type": "string", "example": "Frank Herbert"},
                "isbn": {"type": "string", "example": "9780441013593"},
                "title": {"type": "string", "example": "Dune"}
            }
        },
        "dto.AddBookResponse": {
            "type": "object",
            "properties": {
                "book": {"$ref": "#/definitions/dto.BookItem"},
                "feedback": {"$ref": "#/definitions/dto.FeedbackPayload"}
            }
        },
        "dto.AlertResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string", "example": "2026-10-14 09:00:03"},
                "kind": {"type": "string", "example": "success"},
                "message": {"type": "string", "example": "图书已添加"}
            }
        },
        "dto.BookItem": {
            "type": "object",
            "properties": {
                "author": {"type": "string", "example": "Frank Herbert"},
                "isbn": {"type": "string", "example": "9780441013593"},
                "title": {"type": "string", "example": "Dune"}
            }
        },
        "dto.DeleteBookResponse": {
            "type": "object",
            "properties": {
                "feedback": {"$ref": "#/definitions/dto.FeedbackPayload"},
                "isbn": {"type": "string", "example": "9780441013593"}
            }
        },
        "dto.FeedbackPayload": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "success"},
                "message": {"type": "string", "example": "图书已添加"},
                "shown": {"type": "boolean", "example": true}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo 文档元信息，可在运行时修改Host等字段
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookshelf API",
	Description:      "个人图书目录：添加、列出、删除图书",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
