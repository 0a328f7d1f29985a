package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the api document to echo-swagger under /swagger/doc.json.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	errSwagger  error
)

// registerSwaggerDoc registers doc once per process; swag panics on a second
// registration under the same name.
func registerSwaggerDoc(doc *openapi3.T) error {
	swaggerOnce.Do(func() {
		raw, err := doc.MarshalJSON()
		if err != nil {
			errSwagger = fmt.Errorf("failed to encode api document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return errSwagger
}
