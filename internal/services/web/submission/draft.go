package submission

// Draft is the in-progress form state. All values are kept exactly as typed.
type Draft struct {
	Nome           string
	Email          string
	Telefone       string
	DataNascimento string
	ValorDivida    string
	ValorParcela   string
	TotalParcelas  string
	ParcelasPagas  string
}

// Set stores value under field and reports whether the field is known.
func (d *Draft) Set(field Field, value string) bool {
	target := d.slot(field)
	if target == nil {
		return false
	}
	*target = value
	return true
}

// Value returns the current value of field, or "" for unknown fields.
func (d Draft) Value(field Field) string {
	if target := d.slot(field); target != nil {
		return *target
	}
	return ""
}

func (d *Draft) slot(field Field) *string {
	switch field {
	case FieldNome:
		return &d.Nome
	case FieldEmail:
		return &d.Email
	case FieldTelefone:
		return &d.Telefone
	case FieldDataNascimento:
		return &d.DataNascimento
	case FieldValorDivida:
		return &d.ValorDivida
	case FieldValorParcela:
		return &d.ValorParcela
	case FieldTotalParcelas:
		return &d.TotalParcelas
	case FieldParcelasPagas:
		return &d.ParcelasPagas
	default:
		return nil
	}
}
