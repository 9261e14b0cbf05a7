// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/renegocia/internal/services/web/module"
	apperrors "github.com/louisbranch/renegocia/internal/services/web/platform/errors"
	"github.com/louisbranch/renegocia/internal/services/web/platform/httpx"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes an error page for full-page and HTMX requests.
// message may be empty to use the generic copy for the status.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc := deps.Localizer
	fragment := templates.AppErrorState(statusCode, message, loc)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	var err error
	if httpx.IsHTMXRequest(r) {
		err = templates.MainContent().Render(ctx, w)
	} else {
		err = templates.Layout(templates.PageContext{
			Lang:    deps.Lang,
			Title:   templates.AppErrorPageTitle(statusCode, loc),
			HTMXURL: deps.HTMXURL,
		}).Render(ctx, w)
	}
	if err != nil {
		deps.Log().Printf("render error page status=%d: %v", statusCode, err)
	}
}

// WriteModuleError writes a module-safe localized error response. Internal
// error text never reaches the client.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Printf("request failed method=%s path=%s status=%d err=%v", requestMethod(r), requestPath(r), statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		message := ""
		if apperrors.LocalizationKey(err) != "" {
			message = PublicMessage(deps.Localizer, err)
		}
		WriteAppError(w, r, statusCode, message, deps)
		return
	}
	http.Error(w, PublicMessage(deps.Localizer, err), statusCode)
}

// NotFoundHandler renders the app not-found page.
func NotFoundHandler(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, "", deps)
	})
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return "-"
	}
	return r.Method
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
