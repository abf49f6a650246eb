// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/hardware_types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["HardwareTypes"],
                "summary": "List hardware types",
                "parameters": [
                    {"type": "string", "description": "Comma-separated subset of name,description,image", "name": "fields", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown field", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["HardwareTypes"],
                "summary": "Create a hardware type",
                "parameters": [
                    {"type": "string", "description": "Admin password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Name (max 40 characters)", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {"type": "file", "description": "Image", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/hardware_types/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["HardwareTypes"],
                "summary": "Get a hardware type",
                "parameters": [
                    {"type": "string", "description": "Hardware type ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page size (default: 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["HardwareTypes"],
                "summary": "Update a hardware type",
                "parameters": [
                    {"type": "string", "description": "Hardware type ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Admin password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Name", "name": "name", "in": "formData"},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"},
                    {"type": "boolean", "description": "Remove the current image", "name": "remove_image", "in": "formData"},
                    {"type": "file", "description": "Replacement image", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["HardwareTypes"],
                "summary": "Delete a hardware type and all of its hardware",
                "parameters": [
                    {"type": "string", "description": "Hardware type ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Admin password", "name": "X-Admin-Password", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "purged_items and cleanup_failures"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Delete aborted", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/hardware_types/{id}/hardware": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "List hardware of a type",
                "parameters": [
                    {"type": "string", "description": "Hardware type ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Create hardware under a type",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData", "required": true},
                    {"type": "number", "name": "price", "in": "formData", "required": true},
                    {"type": "integer", "name": "number_in_stock", "in": "formData", "required": true},
                    {"type": "file", "name": "image", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}
            }
        },
        "/hardware": {
            "get": {
                "tags": ["Hardware"],
                "summary": "Redirects to the hardware type list",
                "responses": {"302": {"description": "Found"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Create hardware",
                "parameters": [
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "category_id", "in": "formData", "required": true},
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData", "required": true},
                    {"type": "number", "name": "price", "in": "formData", "required": true},
                    {"type": "integer", "name": "number_in_stock", "in": "formData", "required": true},
                    {"type": "file", "name": "image", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}
            }
        },
        "/hardware/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Hardware type choices",
                "responses": {"200": {"description": "OK"}, "409": {"description": "No hardware type exists"}}
            }
        },
        "/hardware/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Get hardware",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Update hardware",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "category_id", "in": "formData"},
                    {"type": "string", "name": "name", "in": "formData"},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "number", "name": "price", "in": "formData"},
                    {"type": "integer", "name": "number_in_stock", "in": "formData"},
                    {"type": "boolean", "name": "remove_image", "in": "formData"},
                    {"type": "file", "name": "image", "in": "formData"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Validation failed"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Hardware"],
                "summary": "Delete hardware",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-Admin-Password", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
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
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Hardware Inventory API",
	Description:      "Hardware types, hardware records and their images.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
