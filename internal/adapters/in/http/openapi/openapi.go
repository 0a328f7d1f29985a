// Package openapi embeds the HTTP contract of the service and validates
// incoming requests against it.
package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed openapi.yaml
var spec []byte

// ErrUnknownRoute is returned by ValidateRequest for requests the document does not describe.
var ErrUnknownRoute = errors.New("route is not described by the api document")

// Spec returns the raw YAML document.
func Spec() []byte {
	return spec
}

type Validator struct {
	doc    *openapi3.T
	router routers.Router
}

// NewValidator loads and validates the embedded document.
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := openapi3.NewLoader().LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load api document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid api document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &Validator{doc: doc, router: router}, nil
}

func (v *Validator) Document() *openapi3.T {
	return v.doc
}

// ValidateRequest checks parameters and body of req. The body is restored
// after reading so handlers can bind it again.
func (v *Validator) ValidateRequest(req *http.Request) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
			return ErrUnknownRoute
		}
		return fmt.Errorf("failed to find route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	return openapi3filter.ValidateRequest(req.Context(), input)
}

// Fields flattens a validation error into a map from parameter name or
// body pointer to reason.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	collectFields(err, fields)
	return fields
}

func collectFields(err error, fields map[string]string) {
	if multi, ok := err.(openapi3.MultiError); ok { //nolint:errorlint // MultiError is a slice
		for _, e := range multi {
			collectFields(e, fields)
		}
		return
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			fields[reqErr.Parameter.Name] = reason(reqErr)
			return
		}
		if !collectSchemaFields(reqErr.Err, fields) {
			fields["body"] = reason(reqErr)
		}
		return
	}

	if !collectSchemaFields(err, fields) {
		fields["request"] = err.Error()
	}
}

func collectSchemaFields(err error, fields map[string]string) bool {
	if err == nil {
		return false
	}
	if multi, ok := err.(openapi3.MultiError); ok { //nolint:errorlint // MultiError is a slice
		found := false
		for _, e := range multi {
			found = collectSchemaFields(e, fields) || found
		}
		return found
	}

	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return false
	}

	name := "body"
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		name = strings.Join(pointer, ".")
	}
	fields[name] = schemaErr.Reason
	return true
}

func reason(e *openapi3filter.RequestError) string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}
