package resultados

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/renegocia/internal/services/web/routepath"
	"github.com/louisbranch/renegocia/internal/services/web/storage/storagetest"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestRegisterRoutesResultadosMethodContract(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, storagetest.New())

	headRR := httptest.NewRecorder()
	h.ServeHTTP(headRR, httptest.NewRequest(http.MethodHead, routepath.Resultados, nil))
	if headRR.Code != http.StatusOK {
		t.Fatalf("HEAD status = %d, want %d", headRR.Code, http.StatusOK)
	}

	postRR := httptest.NewRecorder()
	h.ServeHTTP(postRR, httptest.NewRequest(http.MethodPost, routepath.Resultados, nil))
	if postRR.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want %d", postRR.Code, http.StatusMethodNotAllowed)
	}
	if got := postRR.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}
