// Package swagger registers the OpenAPI document for the prompt-architect API.
// Regenerate with: swag init -g internal/api/main_annotations.go -o docs/swagger
package swagger

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
        "/optimize": {
            "post": {
                "description": "Embellishes a short idea into a detailed image-generation prompt",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prompts"],
                "summary": "Enhance a seed prompt",
                "parameters": [
                    {
                        "description": "Seed prompt",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.OptimizeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.OptimizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/vocabulary": {
            "get": {
                "description": "Returns the enhancer variant and, for the template variant, its subject categories in match order",
                "produces": ["application/json"],
                "tags": ["Prompts"],
                "summary": "Describe the active enhancer",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.VocabularyResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.OptimizeRequest": {
            "type": "object",
            "properties": {"seedPrompt": {"type": "string"}}
        },
        "api.OptimizeResponse": {
            "type": "object",
            "properties": {"enhancedPrompt": {"type": "string"}}
        },
        "api.VocabularyResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "variant": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "prompt-architect API",
	Description:      "Turns a short seed idea into an embellished prompt for AI image generators.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
