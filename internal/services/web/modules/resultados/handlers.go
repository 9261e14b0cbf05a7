package resultados

import (
	"net/http"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
	"github.com/louisbranch/renegocia/internal/services/web/platform/pagerender"
	"github.com/louisbranch/renegocia/internal/services/web/platform/weberror"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.loadForDisplay(r.Context())
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	loc := h.deps.Localizer
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:       templates.T(loc, "web.resultados.page_title"),
		Description: templates.T(loc, "web.resultados.meta_description"),
		Fragment:    templates.ResultadosPage(Rows(entries, h.deps.DisplayLocation()), loc),
	}); err != nil {
		h.deps.Log().Printf("render resultados page: %v", err)
	}
}
