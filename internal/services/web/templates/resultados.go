package templates

const (
	resultadosHeadingKey = "web.resultados.heading"
	resultadosEmptyKey   = "web.resultados.empty"
	resultadosBackKey    = "web.resultados.back"
)

var resultadosColumnKeys = []string{
	"web.resultados.col_nome",
	"web.resultados.col_email",
	"web.resultados.col_telefone",
	"web.resultados.col_data_nascimento",
	"web.resultados.col_valor_divida",
	"web.resultados.col_valor_parcela",
	"web.resultados.col_total_parcelas",
	"web.resultados.col_parcelas_pagas",
	"web.resultados.col_nova_parcela",
	"web.resultados.col_created_at",
}

// ResultRow is one stored submission formatted for display. Amount fields
// carry the two-decimal number without the currency symbol.
type ResultRow struct {
	Nome           string
	Email          string
	Telefone       string
	DataNascimento string
	ValorDivida    string
	ValorParcela   string
	TotalParcelas  string
	ParcelasPagas  string
	NovaParcela    string
	CreatedAt      string
}

// cells returns the row in column order with amounts prefixed by currency.
func (r ResultRow) cells(loc Localizer) []string {
	return []string{
		r.Nome,
		r.Email,
		r.Telefone,
		r.DataNascimento,
		Money(loc, r.ValorDivida),
		Money(loc, r.ValorParcela),
		r.TotalParcelas,
		r.ParcelasPagas,
		Money(loc, r.NovaParcela),
		r.CreatedAt,
	}
}

func rowClass(i int) string {
	if i%2 == 1 {
		return "row-odd"
	}
	return "row-even"
}
