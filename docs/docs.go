// Package docs holds the OpenAPI description served under /swagger.
// Keep it in step with the handler annotations; `swag init -g cmd/taskagent/main.go` rebuilds it.
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
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check that the task store can be read",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "Task store unavailable",
                        "schema": {"$ref": "#/definitions/response.Resp"}
                    }
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "description": "Returns stored tasks filtered by status and tag.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Filter by status (todo/done)", "name": "status", "in": "query"},
                    {"type": "string", "description": "Filter by tag", "name": "tag", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/intake": {
            "post": {
                "description": "Parses the text into a task and stores it. A failed intake answers 400 or 409.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Add a task from free text",
                "parameters": [
                    {
                        "description": "Free-text task description",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.intakeReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.intakeResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Duplicate task", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/messages": {
            "get": {
                "description": "Returns the most recent session messages, oldest first.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Recent session messages",
                "parameters": [
                    {"type": "integer", "description": "Number of messages (default: all kept)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messagesResp"}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.taskDetailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "patch": {
                "description": "Applies a partial update. Omitted fields are left unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.updateReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.taskDetailResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}/done": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Mark a task done",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.taskDetailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/planning/prioritized": {
            "get": {
                "description": "Returns tasks ordered by score, highest first.",
                "produces": ["application/json"],
                "tags": ["Planning"],
                "summary": "Prioritized tasks",
                "parameters": [
                    {"type": "string", "description": "todo (default), done or all", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.prioritizedResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/planning/schedule": {
            "get": {
                "description": "Plans pending tasks inside the working window and optionally exports them to Google Calendar.",
                "produces": ["application/json"],
                "tags": ["Planning"],
                "summary": "Daily schedule",
                "parameters": [
                    {"type": "string", "description": "Day expression (today, tomorrow, next monday, 2026-03-02)", "name": "day", "in": "query"},
                    {"type": "boolean", "description": "Create calendar events for scheduled tasks", "name": "export", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.scheduleResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/planning/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Planning"],
                "summary": "End-of-day summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.summaryResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.intakeReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "priority_hint": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "priority_hint": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.intakeResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "task": {"$ref": "#/definitions/http.taskResp"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}},
                "total": {"type": "integer"}
            }
        },
        "http.taskDetailResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.taskResp"}
            }
        },
        "http.messagesResp": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/session.Message"}}
            }
        },
        "session.Message": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "content": {"type": "string"},
                "at": {"type": "string"}
            }
        },
        "http.scoredTaskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "due_date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "priority_hint": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "score": {"type": "number"}
            }
        },
        "http.prioritizedResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.scoredTaskResp"}}
            }
        },
        "http.slotResp": {
            "type": "object",
            "properties": {
                "task_id": {"type": "string"},
                "title": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "is_break": {"type": "boolean"}
            }
        },
        "http.unscheduledResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "duration_minutes": {"type": "integer"}
            }
        },
        "http.exportResp": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "created": {"type": "integer"},
                "existing": {"type": "integer"},
                "failed": {"type": "integer"}
            }
        },
        "http.scheduleResp": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "scheduled": {"type": "array", "items": {"$ref": "#/definitions/http.slotResp"}},
                "unscheduled": {"type": "array", "items": {"$ref": "#/definitions/http.unscheduledResp"}},
                "export": {"$ref": "#/definitions/http.exportResp"}
            }
        },
        "http.summaryResp": {
            "type": "object",
            "properties": {
                "completed": {"type": "integer"},
                "pending": {"type": "integer"},
                "suggestions": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Daily Task Agent API",
	Description:      "Capture free-text tasks, prioritize them and plan the working day.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
