// Package routefile loads declarative prefix route tables from YAML
// documents and applies them to a dispatch handler.
//
// A route table maps path prefixes to named handlers:
//
//	routes:
//	  - prefix: /api
//	    handler: api-backend
//	  - prefix: /static
//	    handler: file-server
//	  - prefix: /
//	    handler: fallback
//
// The handler names are resolved against a registry supplied by the
// caller at apply time. A prefix of "/" installs the default handler, as
// with direct registration.
package routefile

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse and apply errors.
var (
	// ErrNoRoutes is returned when a table contains no routes.
	ErrNoRoutes = errors.New("routefile: no routes defined")
)

// Table is a parsed route table document.
type Table struct {
	Routes []Route `yaml:"routes"`
}

// Route binds a path prefix to a named handler.
type Route struct {
	Prefix  string `yaml:"prefix"`
	Handler string `yaml:"handler"`
}

// Registrar is the subset of the dispatch handler the table is applied
// to.
type Registrar interface {
	Handle(prefix string, handler http.Handler) error
}

// Parse decodes a YAML route table and validates it.
func Parse(data []byte) (*Table, error) {
	var table Table

	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("routefile: parse: %w", err)
	}

	if err := table.validate(); err != nil {
		return nil, err
	}

	return &table, nil
}

// Load reads and parses a YAML route table from a file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: load: %w", err)
	}

	return Parse(data)
}

// Apply registers every route in the table on the registrar, resolving
// handler names against handlers. Routes are applied in document order, so
// a duplicate prefix keeps the last binding. Registration stops at the
// first error.
func (t *Table) Apply(r Registrar, handlers map[string]http.Handler) error {
	for _, route := range t.Routes {
		handler, ok := handlers[route.Handler]
		if !ok {
			return fmt.Errorf("routefile: unknown handler %q for prefix %q", route.Handler, route.Prefix)
		}

		if err := r.Handle(route.Prefix, handler); err != nil {
			return fmt.Errorf("routefile: register prefix %q: %w", route.Prefix, err)
		}
	}

	return nil
}

func (t *Table) validate() error {
	if len(t.Routes) == 0 {
		return ErrNoRoutes
	}

	for i, route := range t.Routes {
		if route.Prefix == "" {
			return fmt.Errorf("routefile: route %d: prefix is required", i)
		}

		if route.Handler == "" {
			return fmt.Errorf("routefile: route %d (%s): handler is required", i, route.Prefix)
		}
	}

	return nil
}
