package cadastro

import (
	"net/http"

	"github.com/louisbranch/renegocia/internal/services/web/routepath"
)

func routePatterns() []string {
	return []string{
		http.MethodGet + " " + routepath.Root + "{$}",
		http.MethodPost + " " + routepath.Root + "{$}",
		http.MethodPost + " " + routepath.Telefone,
	}
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	patterns := routePatterns()
	mux.HandleFunc(patterns[0], h.handleIndex)
	mux.HandleFunc(patterns[1], h.handleSubmit)
	mux.HandleFunc(patterns[2], h.handlePhone)
}
