package templates

import (
	"github.com/louisbranch/renegocia/internal/services/web/submission"
)

const (
	cadastroCustomerHeadingKey   = "web.cadastro.customer_heading"
	cadastroCalculatorHeadingKey = "web.cadastro.calculator_heading"
	cadastroSubmitKey            = "web.cadastro.submit"
	cadastroResultHeadingKey     = "web.cadastro.result_heading"
	cadastroTotalSavedKey        = "web.cadastro.total_saved"
	cadastroViewResultsKey       = "web.cadastro.view_results"
)

// PhoneFieldID is the swap target for live phone masking.
const PhoneFieldID = "telefone-field"

// CadastroView is the form state rendered on the cadastro page.
type CadastroView struct {
	Draft  submission.Draft
	Errors submission.ValidationErrors
	// Result holds the derived installment of the submit that produced this
	// render, if any.
	Result *float64
	Saved  int
}

type inputDef struct {
	field       submission.Field
	inputType   string
	labelKey    string
	placeholder string
	step        string
}

func (d inputDef) name() string {
	return string(d.field)
}

var customerInputs = []inputDef{
	{field: submission.FieldNome, inputType: "text", labelKey: "web.cadastro.label_nome", placeholder: "web.cadastro.placeholder_nome"},
	{field: submission.FieldEmail, inputType: "email", labelKey: "web.cadastro.label_email", placeholder: "web.cadastro.placeholder_email"},
	{field: submission.FieldTelefone},
	{field: submission.FieldDataNascimento, inputType: "date", labelKey: "web.cadastro.label_data_nascimento"},
}

var calculatorInputs = []inputDef{
	{field: submission.FieldValorDivida, inputType: "number", labelKey: "web.cadastro.label_valor_divida", placeholder: "web.cadastro.placeholder_valor_divida", step: "0.01"},
	{field: submission.FieldValorParcela, inputType: "number", labelKey: "web.cadastro.label_valor_parcela", placeholder: "web.cadastro.placeholder_valor_parcela", step: "0.01"},
	{field: submission.FieldTotalParcelas, inputType: "number", labelKey: "web.cadastro.label_total_parcelas", placeholder: "web.cadastro.placeholder_total_parcelas"},
	{field: submission.FieldParcelasPagas, inputType: "number", labelKey: "web.cadastro.label_parcelas_pagas", placeholder: "web.cadastro.placeholder_parcelas_pagas"},
}

func ariaInvalid(errMsg string) string {
	if errMsg != "" {
		return "true"
	}
	return "false"
}
