// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "List status checks (at most 1000)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/status.StatusCheck"}}},
                    "500": {"description": "storage failure", "schema": {"$ref": "#/definitions/detail"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Record a status check",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/status.CreateStatusCheckDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/status.StatusCheck"}},
                    "400": {"description": "unreadable body", "schema": {"$ref": "#/definitions/detail"}},
                    "422": {"description": "client_name missing", "schema": {"$ref": "#/definitions/detail"}},
                    "500": {"description": "storage failure", "schema": {"$ref": "#/definitions/detail"}}
                }
            }
        },
        "/api/generate-quiz": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Generate a quiz with Gemini",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/aiquiz.GenerateQuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "success, or success=false when the model or storage failed", "schema": {"$ref": "#/definitions/aiquiz.GenerateQuizResponse"}},
                    "400": {"description": "invalid topic, type or count", "schema": {"$ref": "#/definitions/detail"}},
                    "500": {"description": "unusable model output", "schema": {"$ref": "#/definitions/detail"}}
                }
            }
        }
    },
    "definitions": {
        "detail": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "status.CreateStatusCheckDTO": {
            "type": "object",
            "properties": {"client_name": {"type": "string"}}
        },
        "status.StatusCheck": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "client_name": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "aiquiz.GenerateQuizRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "question_type": {"type": "string", "enum": ["mcq", "multichoice", "fillblanks", "match"]},
                "num_questions": {"type": "integer", "minimum": 1, "maximum": 15}
            }
        },
        "aiquiz.GenerateQuizResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "quiz": {"$ref": "#/definitions/quiz.Quiz"},
                "error": {"type": "string"}
            }
        },
        "quiz.Quiz": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "totalQuestions": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/quiz.Question"}}
            }
        },
        "quiz.ColumnItem": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "text": {"type": "string"}}
        },
        "quiz.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correct": {"description": "integer (mcq), integer list (multichoice), object (match) or null"},
                "blanks": {"type": "array", "items": {"type": "string"}},
                "template": {"type": "string"},
                "leftColumn": {"type": "array", "items": {"$ref": "#/definitions/quiz.ColumnItem"}},
                "rightColumn": {"type": "array", "items": {"$ref": "#/definitions/quiz.ColumnItem"}},
                "explanation": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quizforge API",
	Description:      "Generates quizzes with Gemini and stores them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
