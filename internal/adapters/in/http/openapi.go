package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiDocument []byte

// LoadOpenAPIDocument parses and validates the embedded API description.
// The composition root calls it once at startup so a broken document fails
// the process instead of every request.
func LoadOpenAPIDocument() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}
	return doc, nil
}

// GetOpenAPI handles GET /openapi.json.
func (s *Server) GetOpenAPI(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, openapiDocument)
}
