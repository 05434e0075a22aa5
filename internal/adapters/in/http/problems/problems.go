// Package problems converts application errors into structured problem
// documents, following the RFC 7807 shape. Translation is a pure function
// from an error and a locale to a Problem plus an HTTP status; it never
// touches the request or the response directly.
package problems

import "time"

// typeBaseURL prefixes every problem type URI.
const typeBaseURL = "https://algafood.example.com"

// Type identifies one of the error causes this layer recognizes. The catalog
// below is static and initialized once; handlers never invent new types.
type Type struct {
	URI   string
	Title string
}

func newType(suffix, title string) Type {
	return Type{URI: typeBaseURL + "/" + suffix, Title: title}
}

var (
	TypeResourceNotFound        = newType("resource-not-found", "Resource not found")
	TypeEntityInUse             = newType("entity-in-use", "Entity in use")
	TypeBusinessError           = newType("business-error", "Business rule violation")
	TypeInvalidData             = newType("invalid-data", "Invalid data")
	TypeIncomprehensibleMessage = newType("incomprehensible-message", "Incomprehensible message")
	TypeInvalidParameter        = newType("invalid-parameter", "Invalid parameter")
	TypeSystemError             = newType("system-error", "System error")
)

// Object is a field-level sub-problem within an invalid-data Problem. Name is
// the rejected field when the violation is field-scoped, otherwise the logical
// object name.
type Object struct {
	Name        string `json:"name"`
	UserMessage string `json:"userMessage"`
}

// Problem is the response body for a failed request. It is produced only by
// Translate, never persisted, and lives for a single response cycle.
type Problem struct {
	Status      int       `json:"status"`
	Type        string    `json:"type,omitempty"`
	Title       string    `json:"title"`
	Detail      string    `json:"detail,omitempty"`
	UserMessage string    `json:"userMessage,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Objects     []Object  `json:"objects,omitempty"`
}

func newProblem(status int, problemType Type, detail string) Problem {
	return Problem{
		Status:    status,
		Type:      problemType.URI,
		Title:     problemType.Title,
		Detail:    detail,
		Timestamp: time.Now(),
	}
}
