package cadastro

import (
	"net/http"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
	apperrors "github.com/louisbranch/renegocia/internal/services/web/platform/errors"
	"github.com/louisbranch/renegocia/internal/services/web/platform/pagerender"
	"github.com/louisbranch/renegocia/internal/services/web/platform/weberror"
	"github.com/louisbranch/renegocia/internal/services/web/submission"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

const (
	pageTitleKey       = "web.cadastro.page_title"
	metaDescriptionKey = "web.cadastro.meta_description"
	invalidFormKey     = "web.error.message_invalid_form"
)

type handlers struct {
	service *service
	deps    module.Dependencies
}

func newHandlers(s *service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.index(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderForm(w, r, http.StatusOK, c)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, invalidFormKey, "failed to parse cadastro form"))
		return
	}
	c, outcome, err := h.service.submit(r.Context(), r.PostForm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if !outcome.Valid {
		status = http.StatusUnprocessableEntity
	}
	h.renderForm(w, r, status, c)
}

func (h handlers) handlePhone(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, invalidFormKey, "failed to parse phone field"))
		return
	}
	masked := submission.MaskPhone(r.PostForm.Get(string(submission.FieldTelefone)))
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.PhoneField(masked, "", h.deps.Localizer)); err != nil {
		h.deps.Log().Printf("render phone field: %v", err)
	}
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, status int, c *Controller) {
	view := templates.CadastroView{
		Draft:  c.Draft(),
		Errors: c.Errors(),
		Saved:  len(c.Log()),
	}
	if derived, ok := c.Result(); ok {
		view.Result = &derived
	}
	loc := h.deps.Localizer
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:       templates.T(loc, pageTitleKey),
		Description: templates.T(loc, metaDescriptionKey),
		StatusCode:  status,
		Fragment:    templates.CadastroPage(view, loc),
	}); err != nil {
		h.deps.Log().Printf("render cadastro page: %v", err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
