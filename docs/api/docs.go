// docs.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package api registers the service's OpenAPI document with swag.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/localnerve/storefront-studio",
            "email": "info@localnerve.com"
        },
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/config/{userId}": {
            "get": {
                "description": "Returns the document last published for the user, byte for byte",
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "Get a stored storefront config",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        },
        "/config": {
            "post": {
                "description": "Upserts the user's document. The last write wins; newVersion counts publishes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "Publish a storefront config",
                "parameters": [
                    {"description": "User and document", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PublishRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponseStruct"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        },
        "/collections": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Create a collection",
                "parameters": [
                    {"description": "Collection", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CollectionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.IDResponseStruct"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        },
        "/products": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Create a product in a collection",
                "parameters": [
                    {"description": "Product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.IDResponseStruct"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Create a studio account",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AccountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in to a studio account",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AccountResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponseStruct"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AccountResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handlers.CollectionRequest": {
            "type": "object",
            "properties": {
                "appId": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "collectionId": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "handlers.PublishRequest": {
            "type": "object",
            "properties": {
                "config": {"type": "object"},
                "userId": {"type": "string"}
            }
        },
        "handlers.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "utils.ErrorResponseStruct": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "ok": {"type": "boolean"},
                "status": {"type": "integer"},
                "timestamp": {"type": "string"},
                "type": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "utils.IDResponseStruct": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "utils.SuccessResponseStruct": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "newVersion": {"type": "integer"},
                "ok": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5001",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Storefront Studio API",
	Description:      "Persistence service for storefront configs, catalog ids and studio accounts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
