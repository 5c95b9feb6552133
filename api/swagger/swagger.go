package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ProMeet Roster API",
        "description": "Meeting roster management: attendee lists, filtered views and spreadsheet transfer",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Organizer session"},
        {"name": "Meetings", "description": "Meeting collection and current selection"},
        {"name": "Attendees", "description": "Roster mutations on the current meeting"},
        {"name": "View", "description": "Filtered, sorted roster projection and row selection"},
        {"name": "Transfer", "description": "Spreadsheet import and export"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange the organizer passphrase for a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid passphrase"}
                }
            }
        },
        "/meetings": {
            "get": {
                "tags": ["Meetings"],
                "summary": "List meetings, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Meetings"],
                "summary": "Create a blank meeting and select it",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/{id}": {
            "delete": {
                "tags": ["Meetings"],
                "summary": "Delete a meeting record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "required": true, "type": "boolean"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "412": {"description": "Confirmation required"}
                }
            }
        },
        "/meetings/{id}/select": {
            "post": {
                "tags": ["Meetings"],
                "summary": "Make a meeting current",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current": {
            "get": {
                "tags": ["Meetings"],
                "summary": "Get the current meeting",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No meeting selected"}
                }
            },
            "patch": {
                "tags": ["Meetings"],
                "summary": "Edit the current meeting's title or date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateMeetingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees": {
            "post": {
                "tags": ["Attendees"],
                "summary": "Add an attendee",
                "parameters": [
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/AttendeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No meeting selected"}
                }
            }
        },
        "/meetings/current/attendees/{id}": {
            "patch": {
                "tags": ["Attendees"],
                "summary": "Update fields on one attendee",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AttendeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees/{id}/duplicate": {
            "post": {
                "tags": ["Attendees"],
                "summary": "Duplicate an attendee row",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees/{id}/autofill": {
            "post": {
                "tags": ["Attendees"],
                "summary": "Set a department and autofill its contact fields",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AutofillRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees/autofill": {
            "post": {
                "tags": ["Attendees"],
                "summary": "Derive contact fields for a department before the row exists",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AutofillRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No meeting selected", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees/batch": {
            "patch": {
                "tags": ["Attendees"],
                "summary": "Apply one overlay to several attendees",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BatchAttendeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/attendees/delete": {
            "post": {
                "tags": ["Attendees"],
                "summary": "Delete attendees by id",
                "parameters": [
                    {"name": "confirm", "in": "query", "required": true, "type": "boolean"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteAttendeesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/view": {
            "get": {
                "tags": ["View"],
                "summary": "Get the visible roster projection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No meeting selected"}
                }
            }
        },
        "/meetings/current/view/filter": {
            "put": {
                "tags": ["View"],
                "summary": "Replace the text and status filters",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/view/sort": {
            "post": {
                "tags": ["View"],
                "summary": "Toggle the sort order on a column",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SortRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/view/summary": {
            "get": {
                "tags": ["View"],
                "summary": "Count the unfiltered roster by status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/view/vocabulary/{field}": {
            "get": {
                "tags": ["View"],
                "summary": "List distinct values of a column for autocomplete",
                "parameters": [
                    {"name": "field", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/view/selection": {
            "post": {
                "tags": ["View"],
                "summary": "Select all visible rows, or clear a full selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["View"],
                "summary": "Clear the selection",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/meetings/current/view/selection/{id}": {
            "post": {
                "tags": ["View"],
                "summary": "Toggle one row in the selection",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/current/exports": {
            "post": {
                "tags": ["Transfer"],
                "summary": "Export the current roster to a file",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No meeting selected"}
                }
            }
        },
        "/meetings/current/imports": {
            "post": {
                "tags": ["Transfer"],
                "summary": "Import attendees from an uploaded spreadsheet",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "File could not be decoded"}
                }
            }
        },
        "/exports/downloads/{token}": {
            "get": {
                "tags": ["Transfer"],
                "summary": "Download a generated export by signed token",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "Attendee": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "department": {"type": "string"},
                "jobTitle": {"type": "string"},
                "name": {"type": "string"},
                "contactName": {"type": "string"},
                "phone": {"type": "string"},
                "isNotified": {"type": "boolean"},
                "hasRsvp": {"type": "boolean"},
                "status": {"type": "string", "enum": ["present", "leave", "pending"]},
                "leaveReason": {"type": "string"}
            }
        },
        "Meeting": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "date": {"type": "string"},
                "attendees": {"type": "array", "items": {"$ref": "#/definitions/Attendee"}},
                "createdAt": {"type": "integer"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "passphrase": {"type": "string"}
            },
            "required": ["passphrase"]
        },
        "UpdateMeetingRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "AttendeeRequest": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "jobTitle": {"type": "string"},
                "name": {"type": "string"},
                "contactName": {"type": "string"},
                "phone": {"type": "string"},
                "isNotified": {"type": "boolean"},
                "hasRsvp": {"type": "boolean"},
                "status": {"type": "string", "enum": ["present", "leave", "pending"]},
                "leaveReason": {"type": "string"}
            }
        },
        "BatchAttendeeRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}},
                "patch": {"$ref": "#/definitions/AttendeeRequest"}
            },
            "required": ["ids"]
        },
        "DeleteAttendeesRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["ids"]
        },
        "AutofillRequest": {
            "type": "object",
            "properties": {
                "department": {"type": "string"}
            }
        },
        "FilterRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "status": {"type": "string", "enum": ["ALL", "PRESENT", "LEAVE", "PENDING", "NOTIFIED", "NOT_NOTIFIED", "RSVP_YES", "RSVP_NO"]}
            },
            "required": ["status"]
        },
        "SortRequest": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "enum": ["department", "name", "jobTitle", "status", "contactName"]}
            },
            "required": ["field"]
        },
        "ExportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["format"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
