// Package routepath centralizes web route paths.
package routepath

const (
	// Root serves the cadastro form.
	Root = "/"
	// Telefone returns the masked phone field for live input.
	Telefone = "/telefone"
	// Resultados lists stored submissions.
	Resultados = "/resultados"
	// Health is the liveness probe.
	Health = "/healthz"
	// Static serves embedded assets.
	Static = "/static/"
)
