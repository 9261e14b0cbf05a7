package submission

import "testing"

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft Draft
		want  ValidationErrors
	}{
		{
			name:  "valid",
			draft: Draft{Email: "a@b.co", Telefone: "(11) 98765-4321"},
			want:  ValidationErrors{},
		},
		{
			name:  "bad email only",
			draft: Draft{Email: "bad", Telefone: "11987654321"},
			want:  ValidationErrors{FieldEmail: MessageInvalidEmail},
		},
		{
			name:  "incomplete phone",
			draft: Draft{Email: "Ana.Silva@Example.COM", Telefone: "(11) 9876"},
			want:  ValidationErrors{FieldTelefone: MessageIncompletePhone},
		},
		{
			name:  "both",
			draft: Draft{Email: "a@b.c", Telefone: ""},
			want: ValidationErrors{
				FieldEmail:    MessageInvalidEmail,
				FieldTelefone: MessageIncompletePhone,
			},
		},
		{
			name:  "long s outside ascii",
			draft: Draft{Email: "\u017f@b.co", Telefone: "11987654321"},
			want:  ValidationErrors{FieldEmail: MessageInvalidEmail},
		},
		{
			name:  "kelvin sign in domain",
			draft: Draft{Email: "a@b.\u212Ao", Telefone: "11987654321"},
			want:  ValidationErrors{FieldEmail: MessageInvalidEmail},
		},
		{
			name:  "too many digits",
			draft: Draft{Email: "a@b.co", Telefone: "119876543210"},
			want:  ValidationErrors{FieldTelefone: MessageIncompletePhone},
		},
		{
			name:  "other fields unchecked",
			draft: Draft{Email: "a@b.co", Telefone: "11987654321", ValorDivida: "abc", DataNascimento: "0000-13-99"},
			want:  ValidationErrors{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Validate(tc.draft)
			if len(got) != len(tc.want) {
				t.Fatalf("Validate = %v, want %v", got, tc.want)
			}
			for field, msg := range tc.want {
				if got.Message(field) != msg {
					t.Fatalf("message for %s = %q, want %q", field, got.Message(field), msg)
				}
			}
			if got.Empty() != tc.want.Empty() {
				t.Fatalf("Empty = %t, want %t", got.Empty(), tc.want.Empty())
			}
		})
	}
}

func TestValidationErrorsClear(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{FieldEmail: MessageInvalidEmail, FieldTelefone: MessageIncompletePhone}
	errs.Clear(FieldEmail)
	if errs.Message(FieldEmail) != "" || errs.Message(FieldTelefone) == "" {
		t.Fatalf("Clear touched wrong field: %v", errs)
	}

	var nilErrs ValidationErrors
	if nilErrs.Message(FieldEmail) != "" || !nilErrs.Empty() {
		t.Fatal("nil errors should be empty")
	}
}

func TestDraftSet(t *testing.T) {
	t.Parallel()

	var d Draft
	for _, field := range Fields() {
		if !d.Set(field, string(field)+"-value") {
			t.Fatalf("Set(%s) reported unknown field", field)
		}
	}
	for _, field := range Fields() {
		if got := d.Value(field); got != string(field)+"-value" {
			t.Fatalf("Value(%s) = %q", field, got)
		}
	}
	if d.Set("cpf", "x") {
		t.Fatal("expected unknown field to be rejected")
	}
	if d.Value("cpf") != "" {
		t.Fatal("expected empty value for unknown field")
	}
}
