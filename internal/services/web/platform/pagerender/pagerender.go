// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/renegocia/internal/services/web/module"
	"github.com/louisbranch/renegocia/internal/services/web/platform/httpx"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title       string
	Description string
	StatusCode  int
	Fragment    templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests receive the main
// region only; full-page requests get the document layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		return templates.MainContent().Render(ctx, w)
	}
	return templates.Layout(templates.PageContext{
		Lang:        deps.Lang,
		Title:       page.Title,
		Description: page.Description,
		HTMXURL:     deps.HTMXURL,
	}).Render(ctx, w)
}

// WriteFragment writes a bare component, used for partial swaps that target
// an element smaller than the main region.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return fragment.Render(httpx.RequestContext(r), w)
}
