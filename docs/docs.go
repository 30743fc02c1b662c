// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package docs holds the swagger spec of the Quakescope API.
// Regenerate with: swag init -g cmd/server/docs.go -o docs --parseInternal
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/quakescope/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/timeseries/{id}": {
            "get": {
                "description": "Returns every userquake record sharing the started_at of {id}, ordered by updated_at, as a bare array",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "records"
                ],
                "summary": "Records of one userquake event",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Record"
                            }
                        }
                    },
                    "304": {
                        "description": "Not modified (If-None-Match)"
                    },
                    "400": {
                        "description": "Empty ID, Invalid ID format or Not a userquake event",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Reports version, uptime, open timelines and websocket clients",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Server health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/health/live": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Process is alive",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/health/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "Ready",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Record source or sessions not wired",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/records/{id}": {
            "get": {
                "description": "Returns the record with its regions grouped into relative confidence bands, region codes sorted inside each band",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "records"
                ],
                "summary": "Get one userquake record",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.RecordView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid ID format or not a userquake record",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Repository not configured",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "timelines"
                ],
                "summary": "List open timelines",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/session.Snapshot"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "timelines"
                ],
                "summary": "Open a timeline",
                "parameters": [
                    {
                        "description": "Event and optional speed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateTimelineRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid body, id or speed",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "429": {
                        "description": "Too many open timelines",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "timelines"
                ],
                "summary": "Timeline snapshot",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "timelines"
                ],
                "summary": "Close a timeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Timeline closed",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/pause": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "playback"
                ],
                "summary": "Pause",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/play": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "playback"
                ],
                "summary": "Play",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/seek": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "playback"
                ],
                "summary": "Seek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Position in seconds",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SeekRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid position",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/speed": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "playback"
                ],
                "summary": "Change speed",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Speed multiplier",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SpeedRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Unsupported speed",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/toggle": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "playback"
                ],
                "summary": "Toggle play and pause",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/session.Snapshot"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/timelines/{sid}/ws": {
            "get": {
                "description": "Upgrades to a websocket that receives {\"type\":\"frame\",\"data\":...} messages",
                "tags": [
                    "playback"
                ],
                "summary": "Frame stream",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Timeline id",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching protocols"
                    },
                    "404": {
                        "description": "Timeline not found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Hub not initialized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "source_kind": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "timelines": {
                    "type": "integer"
                },
                "uptime": {
                    "type": "number"
                },
                "version": {
                    "type": "string"
                },
                "websocket_clients": {
                    "type": "integer"
                }
            }
        },
        "api.RecordView": {
            "type": "object",
            "properties": {
                "bands": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/confidence.Band"
                    }
                },
                "code": {
                    "type": "integer"
                },
                "confidence": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "region_count": {
                    "type": "integer"
                },
                "started_at": {
                    "type": "string",
                    "example": "2026/01/15 09:29:00.000"
                },
                "updated_at": {
                    "type": "string",
                    "example": "2026/01/15 09:31:00.500"
                }
            }
        },
        "confidence.Area": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "normalized": {
                    "type": "number"
                }
            }
        },
        "confidence.Band": {
            "type": "object",
            "properties": {
                "areas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/confidence.Area"
                    }
                },
                "label": {
                    "type": "string",
                    "enum": [
                        "A",
                        "B",
                        "C",
                        "D",
                        "E"
                    ]
                }
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": true
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/models.APIError"
                },
                "metadata": {
                    "$ref": "#/definitions/models.Metadata"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "models.AreaConfidence": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number"
                }
            }
        },
        "models.CreateTimelineRequest": {
            "type": "object",
            "properties": {
                "object_id": {
                    "type": "string"
                },
                "speed": {
                    "type": "number",
                    "minimum": 0
                }
            },
            "required": [
                "object_id"
            ]
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "query_time_ms": {
                    "type": "integer"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.Record": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "area_confidences": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/models.AreaConfidence"
                    }
                },
                "code": {
                    "type": "integer"
                },
                "confidence": {
                    "type": "number"
                },
                "started_at": {
                    "type": "string",
                    "example": "2026/01/15 09:29:00.000"
                },
                "updated_at": {
                    "type": "string",
                    "example": "2026/01/15 09:31:00.500"
                }
            }
        },
        "models.SeekRequest": {
            "type": "object",
            "properties": {
                "position": {
                    "type": "integer",
                    "minimum": 0
                }
            },
            "required": [
                "position"
            ]
        },
        "models.SpeedRequest": {
            "type": "object",
            "properties": {
                "multiplier": {
                    "type": "number"
                }
            },
            "required": [
                "multiplier"
            ]
        },
        "playback.Frame": {
            "type": "object",
            "properties": {
                "duration": {
                    "type": "integer"
                },
                "group": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/confidence.Band"
                    }
                },
                "image": {
                    "type": "string"
                },
                "index": {
                    "type": "integer"
                },
                "observed_at": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "record_id": {
                    "type": "string"
                },
                "speed": {
                    "type": "number"
                },
                "state": {
                    "$ref": "#/definitions/playback.State"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "playback.State": {
            "type": "string",
            "enum": [
                "idle",
                "preloading",
                "playing",
                "paused",
                "finished"
            ]
        },
        "session.Snapshot": {
            "type": "object",
            "properties": {
                "anchor": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "duration": {
                    "type": "integer"
                },
                "frame": {
                    "$ref": "#/definitions/playback.Frame"
                },
                "id": {
                    "type": "string"
                },
                "object_id": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "records": {
                    "type": "integer"
                },
                "speed": {
                    "type": "number"
                },
                "state": {
                    "$ref": "#/definitions/playback.State"
                }
            }
        }
    },
    "tags": [
        {
            "description": "Raw timeseries and single userquake records",
            "name": "records"
        },
        {
            "description": "Timeline sessions",
            "name": "timelines"
        },
        {
            "description": "Playback controls and the frame stream",
            "name": "playback"
        },
        {
            "description": "Health probes",
            "name": "health"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Quakescope API",
	Description:      "Userquake timeline playback: record timeseries, single records with\nrelative confidence bands, and server-side timelines whose frames are\npushed over websockets.\n\nEvery JSON response except /api/timeseries/{id} uses the envelope\n{\"status\", \"data\", \"metadata\", \"error\"}.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
