package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the site API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
// prefix is the API mount point (e.g. "/api") and is substituted into the paths.
func RegisterSwagger(rg *gin.Engine, prefix string) {
	doc := strings.ReplaceAll(swaggerJSON, "{prefix}", strings.TrimRight(prefix, "/"))

	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Viador Assan API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Viador Assan - Conhecimento ao seu Alcance", "version": "v1.0.0" },
  "paths": {
    "{prefix}/": { "get": { "summary": "API identity", "responses": { "200": { "description": "message" } } } },
    "{prefix}/contact": {
      "get": { "summary": "Business contact info", "responses": { "200": { "description": "ContactInfo" }, "404": { "description": "contact info not found" } } }
    },
    "{prefix}/services": { "get": { "summary": "List services (max 100)", "responses": { "200": { "description": "Service[]" } } } },
    "{prefix}/courses": { "get": { "summary": "List IT courses (max 100)", "responses": { "200": { "description": "ITCourse[]" } } } },
    "{prefix}/courses/{subject}": {
      "get": {
        "summary": "IT course by subject",
        "parameters": [ { "name": "subject", "in": "path", "required": true, "schema": { "type": "string", "enum": ["word", "powerpoint", "excel", "netbeans", "qgis"] } } ],
        "responses": { "200": { "description": "ITCourse" }, "404": { "description": "course not found" }, "422": { "description": "unknown subject" } }
      }
    },
    "{prefix}/contact/message": {
      "post": {
        "summary": "Submit a contact message",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["name", "phone", "service_interest", "message"], "properties": { "name": { "type": "string" }, "phone": { "type": "string" }, "email": { "type": "string", "nullable": true }, "service_interest": { "type": "string" }, "message": { "type": "string" } } } } } },
        "responses": { "200": { "description": "stored ContactMessage" }, "422": { "description": "missing or unknown field" } }
      }
    },
    "{prefix}/contact/messages": { "get": { "summary": "List contact messages, newest first (max 100)", "responses": { "200": { "description": "ContactMessage[]" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
