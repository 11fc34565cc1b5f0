// Package api holds the OpenAPI description of the lookup HTTP API.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed dayz-lookup.openapi.yaml
var openapiDoc []byte

// LoadSwagger parses and validates the embedded OpenAPI document.
func LoadSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openapiDoc)
	if err != nil {
		return nil, fmt.Errorf("can't load openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}
