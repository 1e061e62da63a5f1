// Package docs holds the OpenAPI document of the HTTP API.
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
        "/api/ingest": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["ingest"],
                "summary": "Parse an uploaded csv, xlsx or xls file",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.IngestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/mappings": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mappings"],
                "summary": "Classify columns by keyword",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.AutoMapRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.MappingsResponse"}}
                }
            }
        },
        "/api/mappings/override": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mappings"],
                "summary": "Change the role of one column",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.OverrideMappingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.MappingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/mappings/suggest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mappings"],
                "summary": "Ask the language model for column roles",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.SuggestMappingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.MappingsResponse"}}
                }
            }
        },
        "/api/mappings/customer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mappings"],
                "summary": "Build the customer record of one row",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.PreviewCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.Customer"}}
                }
            }
        },
        "/api/generate-report": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate the wrapped slides of one customer",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.GenerateReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.ReportResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/schema/slides": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "JSON schema of the slide list",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/themes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "List theme presets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.ThemesResponse"}}
                }
            }
        },
        "/api/themes/custom": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "Build a theme from two brand colors",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.CustomThemeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.Theme"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/slides/render": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/html"],
                "tags": ["slides"],
                "summary": "Render the navigable slide deck page",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.SlideDeckRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/slides/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["slides"],
                "summary": "Export one slide, or all when index is absent, as PNG",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.ExportSlidesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.ExportSlidesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/bulk": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bulk"],
                "summary": "Start generating reports for every row",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.BulkRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/dtos.BulkStartedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/api/bulk/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bulk"],
                "summary": "Bulk job status and results",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.BulkJob"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "app.ColumnMapping": {
            "type": "object",
            "required": ["mappedTo"],
            "properties": {
                "originalName": {"type": "string"},
                "mappedTo": {"type": "string", "enum": ["name", "email", "phone", "transaction", "metadata", "ignore"]},
                "subType": {"type": "string", "enum": ["date", "amount", "service"]}
            }
        },
        "app.Customer": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": {}}
            }
        },
        "app.Theme": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "gradients": {"type": "array", "minItems": 5, "maxItems": 5, "items": {"type": "string"}},
                "primaryColor": {"type": "string"},
                "accentColor": {"type": "string"}
            }
        },
        "app.Slide": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["intro", "stat", "chart", "grid", "leaderboard", "comparison", "achievement", "closing"]},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "mainStat": {"type": "string"},
                "statLabel": {"type": "string"},
                "comparison": {"type": "string"},
                "icon": {"type": "string"},
                "gradient": {"type": "string"},
                "textColor": {"type": "string"},
                "chartData": {"type": "object"}
            }
        },
        "app.ReportResult": {
            "type": "object",
            "properties": {
                "report": {"type": "string"},
                "slides": {"type": "array", "x-nullable": true, "items": {"$ref": "#/definitions/app.Slide"}}
            }
        },
        "app.GeneratedReport": {
            "type": "object",
            "properties": {
                "customer": {"$ref": "#/definitions/app.Customer"},
                "report": {"type": "string"},
                "slides": {"type": "array", "items": {"$ref": "#/definitions/app.Slide"}}
            }
        },
        "app.BulkJob": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "running", "completed", "cancelled"]},
                "progress": {
                    "type": "object",
                    "properties": {"current": {"type": "integer"}, "total": {"type": "integer"}}
                },
                "reports": {"type": "array", "items": {"$ref": "#/definitions/app.GeneratedReport"}},
                "failures": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"row": {"type": "integer"}, "customer": {"type": "string"}, "reason": {"type": "string"}}
                    }
                },
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "dtos.IngestResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {}}},
                "mappings": {"type": "array", "items": {"$ref": "#/definitions/app.ColumnMapping"}}
            }
        },
        "dtos.AutoMapRequest": {
            "type": "object",
            "required": ["columns"],
            "properties": {"columns": {"type": "array", "items": {"type": "string"}}}
        },
        "dtos.SuggestMappingRequest": {
            "type": "object",
            "required": ["columns"],
            "properties": {
                "columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}
            }
        },
        "dtos.OverrideMappingRequest": {
            "type": "object",
            "required": ["mappings", "mappedTo"],
            "properties": {
                "mappings": {"type": "array", "items": {"$ref": "#/definitions/app.ColumnMapping"}},
                "index": {"type": "integer", "minimum": 0},
                "mappedTo": {"type": "string"}
            }
        },
        "dtos.MappingsResponse": {
            "type": "object",
            "properties": {"mappings": {"type": "array", "items": {"$ref": "#/definitions/app.ColumnMapping"}}}
        },
        "dtos.PreviewCustomerRequest": {
            "type": "object",
            "required": ["row", "mappings"],
            "properties": {
                "row": {"type": "object", "additionalProperties": {}},
                "mappings": {"type": "array", "items": {"$ref": "#/definitions/app.ColumnMapping"}},
                "fallbackName": {"type": "string"}
            }
        },
        "dtos.GenerateReportRequest": {
            "type": "object",
            "required": ["customer"],
            "properties": {
                "customer": {"$ref": "#/definitions/app.Customer"},
                "businessName": {"type": "string"},
                "businessType": {"type": "string"},
                "businessContext": {"type": "string"},
                "businessUrl": {"type": "string"},
                "logoUrl": {"type": "string"},
                "theme": {"$ref": "#/definitions/app.Theme"},
                "themeName": {"type": "string"}
            }
        },
        "dtos.ThemesResponse": {
            "type": "object",
            "properties": {
                "themes": {"type": "array", "items": {"$ref": "#/definitions/app.Theme"}},
                "default": {"type": "string"}
            }
        },
        "dtos.CustomThemeRequest": {
            "type": "object",
            "required": ["primaryColor", "accentColor"],
            "properties": {
                "primaryColor": {"type": "string"},
                "accentColor": {"type": "string"}
            }
        },
        "dtos.SlideDeckRequest": {
            "type": "object",
            "required": ["customerName", "slides"],
            "properties": {
                "customerName": {"type": "string"},
                "businessName": {"type": "string"},
                "logoUrl": {"type": "string"},
                "slides": {"type": "array", "items": {"$ref": "#/definitions/app.Slide"}}
            }
        },
        "dtos.ExportSlidesRequest": {
            "type": "object",
            "required": ["customerName", "slides"],
            "properties": {
                "customerName": {"type": "string"},
                "businessName": {"type": "string"},
                "logoUrl": {"type": "string"},
                "slides": {"type": "array", "items": {"$ref": "#/definitions/app.Slide"}},
                "index": {"type": "integer", "minimum": 0}
            }
        },
        "dtos.ExportSlidesResponse": {
            "type": "object",
            "properties": {
                "images": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"name": {"type": "string"}, "dataUri": {"type": "string"}}
                    }
                }
            }
        },
        "dtos.BulkRequest": {
            "type": "object",
            "required": ["rows", "mappings"],
            "properties": {
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {}}},
                "mappings": {"type": "array", "items": {"$ref": "#/definitions/app.ColumnMapping"}},
                "businessName": {"type": "string"},
                "businessType": {"type": "string"},
                "businessContext": {"type": "string"},
                "businessUrl": {"type": "string"},
                "logoUrl": {"type": "string"},
                "theme": {"$ref": "#/definitions/app.Theme"},
                "themeName": {"type": "string"}
            }
        },
        "dtos.BulkStartedResponse": {
            "type": "object",
            "properties": {"jobId": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wrapped Reports API",
	Description:      "Turns customer spreadsheets into wrapped-style slide reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
