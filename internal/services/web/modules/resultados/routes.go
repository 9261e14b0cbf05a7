package resultados

import (
	"net/http"

	"github.com/louisbranch/renegocia/internal/services/web/routepath"
)

func routePatterns() []string {
	return []string{http.MethodGet + " " + routepath.Resultados}
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routePatterns()[0], h.handleIndex)
}
