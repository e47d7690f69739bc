// Package docs registers the Swagger specification for the gateway.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API discovery",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.DiscoveryResponse"}
                    }
                }
            }
        },
        "/api/video_info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["video"],
                "summary": "Get video metadata",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YouTube video URL",
                        "name": "url",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.VideoMetadata"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        },
        "/api/download": {
            "get": {
                "produces": ["video/mp4"],
                "tags": ["video"],
                "summary": "Download a video stream",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YouTube video URL",
                        "name": "url",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Explicit stream itag",
                        "name": "itag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "binary stream"},
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        },
        "/api/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search videos by keyword",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search query",
                        "name": "q",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "description": "Maximum number of results",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.SearchResultItem"}
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service uptime",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.StatsResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.DiscoveryResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "models.SearchResultItem": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "duration": {"type": "integer"},
                "thumbnail": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "views": {"type": "integer"}
            }
        },
        "models.StatsResponse": {
            "type": "object",
            "properties": {
                "uptime": {"type": "string"}
            }
        },
        "models.StreamVariant": {
            "type": "object",
            "properties": {
                "filesize": {"type": "integer"},
                "fps": {"type": "integer"},
                "itag": {"type": "integer"},
                "resolution": {"type": "string"}
            }
        },
        "models.VideoMetadata": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "available_resolutions": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.StreamVariant"}
                },
                "description": {"type": "string"},
                "highest_resolution": {"$ref": "#/definitions/models.StreamVariant"},
                "length": {"type": "integer"},
                "publish_date": {"type": "string"},
                "rating": {"type": "number"},
                "thumbnail_url": {"type": "string"},
                "title": {"type": "string"},
                "views": {"type": "integer"}
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
	Title:            "YouTube Video Gateway API",
	Description:      "HTTP gateway exposing YouTube metadata lookup, stream enumeration, file download and keyword search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
