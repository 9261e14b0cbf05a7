package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
)

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, module.Dependencies{}, ModulePage{
		Title:      "Cadastro",
		StatusCode: http.StatusUnprocessableEntity,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) || !strings.Contains(body, `id="main"`) {
		t.Fatalf("body missing fragment markers: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/resultados", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, module.Dependencies{HTMXURL: "/static/htmx.min.js"}, ModulePage{
		Title:    "Parcelas Calculadas",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", "<title>Parcelas Calculadas</title>", `id="main"`, `id="fragment-root"`, `src="/static/htmx.min.js"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageHandlesNilFragmentAndWriter(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, nil, module.Dependencies{}, ModulePage{}); err != nil {
		t.Fatalf("nil writer error = %v", err)
	}
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), module.Dependencies{}, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestWriteFragmentWritesComponentOnly(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := WriteFragment(rr, httptest.NewRequest(http.MethodPost, "/telefone", nil), 0, textComponent(`<div id="telefone-field"></div>`))
	if err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if body := rr.Body.String(); body != `<div id="telefone-field"></div>` {
		t.Fatalf("body = %q", body)
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}
