// Package docs registers the learnhub OpenAPI document with swag.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "课程列表",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}}
            }
        },
        "/courses/{course}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "课程详情",
                "parameters": [
                    {"type": "string", "description": "课程 slug", "name": "course", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/courses/{course}/modules/{module}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "模块详情",
                "parameters": [
                    {"type": "string", "description": "课程 slug", "name": "course", "in": "path", "required": true},
                    {"type": "string", "description": "模块 slug", "name": "module", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.HealthResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "获取学习进度",
                "parameters": [
                    {"type": "string", "description": "会话 ID", "name": "session_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "更新学习进度",
                "parameters": [
                    {"description": "进度", "name": "progress", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.UpsertProgressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/event": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "记录事件",
                "parameters": [
                    {"description": "事件", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/quiz/{course}/{module}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "获取下一道题",
                "parameters": [
                    {"type": "string", "description": "课程 slug", "name": "course", "in": "path", "required": true},
                    {"type": "string", "description": "模块 slug", "name": "module", "in": "path", "required": true},
                    {"type": "string", "description": "会话 ID", "name": "session_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.NextQuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "提交答案",
                "parameters": [
                    {"type": "string", "description": "课程 slug", "name": "course", "in": "path", "required": true},
                    {"type": "string", "description": "模块 slug", "name": "module", "in": "path", "required": true},
                    {"description": "答案", "name": "answer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SubmitAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        }
    },
    "definitions": {
        "util.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "controller.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "database": {"type": "string"}
            }
        },
        "controller.UpsertProgressRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "module_slug": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "controller.EventRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "event_type": {"type": "string"},
                "module_slug": {"type": "string"},
                "page": {"type": "string"}
            }
        },
        "controller.SubmitAnswerRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "question_id": {"type": "string"},
                "selected": {"type": "string"}
            }
        },
        "controller.NextQuestionResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "prompt": {"type": "string"},
                        "options": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                },
                "completed": {"type": "boolean"},
                "remaining": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "learnhub API",
	Description:      "Course content, anonymous progress tracking and quiz rotation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
