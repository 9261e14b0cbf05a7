package submission

// Field names one editable form input. Values double as HTML input names and
// JSON keys in the persisted log.
type Field string

const (
	FieldNome           Field = "nome"
	FieldEmail          Field = "email"
	FieldTelefone       Field = "telefone"
	FieldDataNascimento Field = "dataNascimento"
	FieldValorDivida    Field = "valorDivida"
	FieldValorParcela   Field = "valorParcela"
	FieldTotalParcelas  Field = "totalParcelas"
	FieldParcelasPagas  Field = "parcelasPagas"
)

// Fields lists every editable field in form order.
func Fields() []Field {
	return []Field{
		FieldNome,
		FieldEmail,
		FieldTelefone,
		FieldDataNascimento,
		FieldValorDivida,
		FieldValorParcela,
		FieldTotalParcelas,
		FieldParcelasPagas,
	}
}

// Valid reports whether f is one of the eight form fields.
func (f Field) Valid() bool {
	switch f {
	case FieldNome, FieldEmail, FieldTelefone, FieldDataNascimento,
		FieldValorDivida, FieldValorParcela, FieldTotalParcelas, FieldParcelasPagas:
		return true
	default:
		return false
	}
}
