package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Telefone != "/telefone" {
		t.Fatalf("Telefone = %q", Telefone)
	}
	if Resultados != "/resultados" {
		t.Fatalf("Resultados = %q", Resultados)
	}
	if Health != "/healthz" {
		t.Fatalf("Health = %q", Health)
	}
	if Static != "/static/" {
		t.Fatalf("Static = %q", Static)
	}
}
