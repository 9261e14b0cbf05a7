package modules

import (
	"github.com/louisbranch/renegocia/internal/services/web/modules/cadastro"
	"github.com/louisbranch/renegocia/internal/services/web/modules/resultados"
)

// DefaultModules returns the form and results modules in mount order.
func DefaultModules() []Module {
	return []Module{
		cadastro.New(),
		resultados.New(),
	}
}
