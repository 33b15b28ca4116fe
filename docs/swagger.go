package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List all users",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failure"},
                    "409": {"description": "Email already exists"}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Verify credentials",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get a user by id",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/boards": {
            "post": {
                "tags": ["Boards"],
                "summary": "Create a board with the default column layout",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/api/boards/user/{userId}": {
            "get": {
                "tags": ["Boards"],
                "summary": "List boards owned by a user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/boards/{id}": {
            "get": {
                "tags": ["Boards"],
                "summary": "Get a board by id",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Boards"],
                "summary": "Replace a board's data blob",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failure"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Boards"],
                "summary": "Delete a board",
                "responses": {"204": {"description": "No content"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanbanase API",
	Description:      "Backend API for kanban board and user account management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
