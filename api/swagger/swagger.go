package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Edu Dham API",
        "description": "University directory and lead management API",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login, registration and password reset"},
        {"name": "Universities", "description": "Directory listings and bulk import"},
        {"name": "Applications", "description": "Lead intake and consoles"},
        {"name": "Categories", "description": "Category vocabulary"},
        {"name": "Admin", "description": "Dashboard stats and manager accounts"},
        {"name": "Homepage", "description": "Homepage hero and branding"},
        {"name": "Media", "description": "Photo uploads"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Request password reset OTP",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OTPRequest"}}
                ],
                "responses": {
                    "200": {"description": "OTP issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No account with this email"}
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Reset password with OTP",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OTPVerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Password reset"},
                    "400": {"description": "Invalid or expired OTP"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/universities": {
            "get": {
                "tags": ["Universities"],
                "summary": "List universities",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Universities"],
                "summary": "Create university",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UniversityInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/universities/{id}": {
            "get": {
                "tags": ["Universities"],
                "summary": "Get university",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Universities"],
                "summary": "Update university",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UniversityInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Managers may only update their own listing"}
                }
            },
            "delete": {
                "tags": ["Universities"],
                "summary": "Delete university",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/universities/filters/options": {
            "get": {
                "tags": ["Universities"],
                "summary": "List filter vocabulary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/universities/bulk-template": {
            "get": {
                "tags": ["Universities"],
                "summary": "Download bulk import template",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {
                    "200": {"description": "XLSX template"}
                }
            }
        },
        "/universities/bulk-upload": {
            "post": {
                "tags": ["Universities"],
                "summary": "Bulk import universities",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Import result", "schema": {"$ref": "#/definitions/BulkImportResult"}},
                    "400": {"description": "Missing required columns"}
                }
            }
        },
        "/universities/{id}/photo": {
            "post": {
                "tags": ["Universities"],
                "summary": "Upload main photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large"},
                    "415": {"description": "Not an image"}
                }
            }
        },
        "/universities/{id}/applications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications for one university",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Out of manager scope"}
                }
            }
        },
        "/applications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications visible to the actor",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Applications"],
                "summary": "Submit application",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplicationInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/{id}/status": {
            "put": {
                "tags": ["Applications"],
                "summary": "Update application status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "status", "in": "query", "required": true, "type": "string", "enum": ["pending", "completed", "cancelled"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown status"}
                }
            }
        },
        "/applications/{id}": {
            "delete": {
                "tags": ["Applications"],
                "summary": "Delete application",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/applications/export": {
            "get": {
                "tags": ["Applications"],
                "summary": "Export applications",
                "parameters": [
                    {"name": "university_id", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CategoryInput"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Category already exists"}
                }
            }
        },
        "/categories/{id}": {
            "put": {
                "tags": ["Categories"],
                "summary": "Rename category",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CategoryInput"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Categories"],
                "summary": "Delete category",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["Admin"],
                "summary": "Admin dashboard counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminStats"}}
                }
            }
        },
        "/admin/managers": {
            "get": {
                "tags": ["Admin"],
                "summary": "List manager accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Create manager account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateManagerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email already exists"}
                }
            }
        },
        "/admin/managers/{id}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Update manager account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateManagerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete manager account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/homepage-config": {
            "get": {
                "tags": ["Homepage"],
                "summary": "Get homepage configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HomepageConfig"}}
                }
            },
            "put": {
                "tags": ["Homepage"],
                "summary": "Update homepage configuration",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/HomepageConfig"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/branding": {
            "get": {
                "tags": ["Homepage"],
                "summary": "Get site branding",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/upload/photo": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "413": {"description": "File too large"},
                    "415": {"description": "Not an image"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"}
            },
            "required": ["email", "password", "name"]
        },
        "OTPRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            },
            "required": ["email"]
        },
        "OTPVerifyRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "otp": {"type": "string"},
                "new_password": {"type": "string"}
            },
            "required": ["email", "otp", "new_password"]
        },
        "Course": {
            "type": "object",
            "properties": {
                "course_name": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "fees": {"type": "number"},
                "category": {"type": "string"}
            }
        },
        "UniversityInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "location": {"type": "string"},
                "state": {"type": "string"},
                "university_categories": {"type": "array", "items": {"type": "string"}},
                "main_photo": {"type": "string"},
                "photo_gallery": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/Course"}},
                "placement_percentage": {"type": "number"},
                "rating": {"type": "number"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "contact_details": {"type": "object"}
            },
            "required": ["name", "location"]
        },
        "ApplicationInput": {
            "type": "object",
            "properties": {
                "university_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "course_interest": {"type": "string"},
                "short_note": {"type": "string"}
            },
            "required": ["university_id", "name", "email"]
        },
        "CategoryInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            },
            "required": ["name"]
        },
        "CreateManagerRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "university_id": {"type": "string"}
            },
            "required": ["email", "password", "name", "university_id"]
        },
        "UpdateManagerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "university_id": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "HomepageConfig": {
            "type": "object",
            "properties": {
                "hero_title": {"type": "string"},
                "hero_title_highlight": {"type": "string"},
                "hero_subtitle": {"type": "string"},
                "cta_text": {"type": "string"},
                "hero_images": {"type": "array", "items": {"type": "string"}},
                "slide_interval_ms": {"type": "integer"},
                "site_name": {"type": "string"},
                "logo_url": {"type": "string"},
                "hero_title_color": {"type": "string"},
                "hero_title_highlight_color": {"type": "string"},
                "hero_subtitle_color": {"type": "string"},
                "show_footer": {"type": "boolean"}
            }
        },
        "AdminStats": {
            "type": "object",
            "properties": {
                "total_universities": {"type": "integer"},
                "total_applications": {"type": "integer"},
                "total_managers": {"type": "integer"},
                "pending_applications": {"type": "integer"}
            }
        },
        "BulkImportResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "created_count": {"type": "integer"},
                "created": {"type": "array", "items": {"type": "string"}},
                "error_count": {"type": "integer"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
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
                "pagination": {"type": "object"},
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
