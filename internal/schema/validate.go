package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrUnknownSchema is returned for names not in the registry.
	ErrUnknownSchema = errors.New("schema not found")

	// ErrInvalidRequest is returned when a body does not match its schema.
	ErrInvalidRequest = errors.New("invalid request")
)

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

// compileAll compiles every registered schema once.
func compileAll() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		schemas, err := All()
		if err != nil {
			compileErr = err
			return
		}

		compiler := jsonschema.NewCompiler()
		for _, s := range schemas {
			if err := compiler.AddResource(filename(s.Name), strings.NewReader(s.JSON)); err != nil {
				compileErr = fmt.Errorf("failed to load schema %s: %w", s.Name, err)
				return
			}
		}

		compiled = make(map[string]*jsonschema.Schema, len(schemas))
		for _, s := range schemas {
			sch, err := compiler.Compile(filename(s.Name))
			if err != nil {
				compileErr = fmt.Errorf("failed to compile schema %s: %w", s.Name, err)
				return
			}
			compiled[s.Name] = sch
		}
	})
	return compiled, compileErr
}

// Validate checks a raw JSON body against the named schema.
func Validate(name string, body []byte) error {
	schemas, err := compileAll()
	if err != nil {
		return err
	}
	sch, ok := schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: malformed JSON: %v", ErrInvalidRequest, err)
	}

	if err := sch.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, describe(verr))
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// describe returns the innermost validation message with its location.
func describe(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	loc := verr.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, verr.Message)
}
