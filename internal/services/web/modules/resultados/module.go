// Package resultados renders the read-only table of stored submissions.
package resultados

import (
	"net/http"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
)

// Module provides the results route.
type Module struct{}

// New returns a resultados module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "resultados" }

// Mount wires resultados route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Store, deps.Log()), deps))
	return module.Mount{Patterns: routePatterns(), Handler: mux}, nil
}
