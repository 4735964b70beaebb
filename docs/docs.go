// Package docs holds the OpenAPI description served under /swagger.
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
        "/schedule": {
            "post": {
                "description": "Creates a calendar event from either a natural-language query or a pre-structured event.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Schedule an event",
                "parameters": [
                    {
                        "description": "Either {query} or {event}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/scheduleReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scheduleResp"}},
                    "400": {"description": "Rejected query or invalid event", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Completion or calendar provider failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/nlp/create": {
            "post": {
                "description": "Parses a natural-language request with the completion model and creates the event.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Schedule an event from text",
                "parameters": [
                    {
                        "description": "{query}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/scheduleReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scheduleResp"}},
                    "400": {"description": "Rejected or empty query", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Completion or calendar provider failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/calendar/schedule": {
            "post": {
                "description": "Validates a pre-structured event and creates it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Schedule a structured event",
                "parameters": [
                    {
                        "description": "{event}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/scheduleReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scheduleResp"}},
                    "400": {"description": "Invalid event", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Calendar provider failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/events/upcoming": {
            "get": {
                "description": "Lists events starting from now, ordered by start time.",
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "List upcoming events",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum number of events (default 10, max 50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/listUpcomingResp"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Calendar provider failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/healthResp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/healthResp"}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/healthResp"}}
                }
            }
        }
    },
    "definitions": {
        "timePayload": {
            "type": "object",
            "properties": {
                "dateTime": {"type": "string", "example": "2024-03-25T10:00:00"},
                "timeZone": {"type": "string", "example": "America/Los_Angeles"}
            }
        },
        "eventPayload": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "summary": {"type": "string"},
                "description": {"type": "string"},
                "start": {"$ref": "#/definitions/timePayload"},
                "end": {"$ref": "#/definitions/timePayload"}
            }
        },
        "scheduleReq": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "schedule a cleaning session tomorrow morning"},
                "event": {"$ref": "#/definitions/eventPayload"}
            }
        },
        "timeResp": {
            "type": "object",
            "properties": {
                "dateTime": {"type": "string"},
                "date": {"type": "string"},
                "timeZone": {"type": "string"}
            }
        },
        "eventResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "summary": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start": {"$ref": "#/definitions/timeResp"},
                "end": {"$ref": "#/definitions/timeResp"},
                "link": {"type": "string"}
            }
        },
        "scheduleResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string", "example": "Event created successfully"},
                "category": {"type": "string", "example": "errand"},
                "event": {"$ref": "#/definitions/eventResp"}
            }
        },
        "listUpcomingResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/eventResp"}}
            }
        },
        "healthResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "version": {"type": "string"},
                "service": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string"},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:5000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Calendar Assistant API",
	Description:      "Turns natural-language scheduling requests into Google Calendar events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
