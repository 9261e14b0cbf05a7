package cadastro

import (
	"net/http"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
)

// Module provides the cadastro form and installment calculator routes.
type Module struct{}

// New returns a cadastro module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cadastro" }

// Mount wires cadastro route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Store, deps.Clock(), deps.Log())
	registerRoutes(mux, newHandlers(svc, deps))
	return module.Mount{Patterns: routePatterns(), Handler: mux}, nil
}
