package weberror

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/renegocia/internal/platform/i18n/catalog"
	module "github.com/louisbranch/renegocia/internal/services/web/module"
	apperrors "github.com/louisbranch/renegocia/internal/services/web/platform/errors"
)

func testDeps(t *testing.T, buf *bytes.Buffer) module.Dependencies {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return module.Dependencies{
		Localizer: bundle.Printer(catalog.BaseLocale),
		Logger:    log.New(buf, "", 0),
	}
}

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), testDeps(t, &buf))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="app-error-state"`) || !strings.Contains(body, "<title>Página não encontrada</title>") {
		t.Fatalf("body missing app error state marker: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"), testDeps(t, &buf))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorLocalizesUnavailableAndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/resultados", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	err := apperrors.Wrap(apperrors.KindUnavailable, "web.error.message_store_unavailable", "load submissions", errors.New("database is locked"))
	WriteModuleError(rr, req, err, testDeps(t, &buf))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "O armazenamento de submissões está indisponível.") {
		t.Fatalf("body missing localized message: %q", body)
	}
	if strings.Contains(body, "database is locked") || strings.Contains(body, "<html") {
		t.Fatalf("unexpected body: %q", body)
	}
	if !strings.Contains(buf.String(), "database is locked") || !strings.Contains(buf.String(), "status=503") {
		t.Fatalf("log = %q, want cause and status", buf.String())
	}
}

func TestWriteAppErrorNormalizesStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, "", testDeps(t, &buf))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rr := httptest.NewRecorder()
	NotFoundHandler(testDeps(t, &buf)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nada", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "O endereço acessado não existe.") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestPublicMessageFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(nil, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
	if got := PublicMessage(nil, errors.New("boom")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(untyped) = %q", got)
	}
}
