// Package schema holds the JSON schemas for API request bodies.
package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema represents a request body schema.
type Schema struct {
	Name  string // Request name (e.g., "Labels")
	JSON  string // JSON Schema document
	Order int    // Listing order
}

// registry holds all request schemas.
var registry = []Schema{
	{Name: "Check", Order: 1},
	{Name: "Labels", Order: 2},
	{Name: "Session", Order: 3},
	{Name: "Next", Order: 4},
}

// Names of the registered schemas.
const (
	Check   = "Check"
	Labels  = "Labels"
	Session = "Session"
	Next    = "Next"
)

// All returns all schemas in order.
// Schemas are loaded from embedded .json files.
func All() ([]Schema, error) {
	schemas := make([]Schema, len(registry))
	copy(schemas, registry)

	for i := range schemas {
		content, err := schemaFS.ReadFile(filename(schemas[i].Name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", schemas[i].Name, err)
		}
		schemas[i].JSON = string(content)
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Order < schemas[j].Order
	})

	return schemas, nil
}

// Get returns a single schema by name.
func Get(name string) (*Schema, error) {
	for _, s := range registry {
		if s.Name == name {
			content, err := schemaFS.ReadFile(filename(s.Name))
			if err != nil {
				return nil, fmt.Errorf("failed to read schema %s: %w", s.Name, err)
			}
			return &Schema{
				Name:  s.Name,
				JSON:  string(content),
				Order: s.Order,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
}

func filename(name string) string {
	return fmt.Sprintf("schemas/%s.json", strings.ToLower(name))
}
