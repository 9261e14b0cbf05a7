package submission

import "regexp"

const (
	// MessageInvalidEmail is shown next to an email that fails the pattern.
	MessageInvalidEmail = "Digite um e-mail válido"
	// MessageIncompletePhone is shown when the phone lacks eleven digits.
	MessageIncompletePhone = "Telefone incompleto"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidationErrors maps a field to its inline message. Only email and
// telefone are ever checked.
type ValidationErrors map[Field]string

// Empty reports whether no field failed.
func (e ValidationErrors) Empty() bool {
	return len(e) == 0
}

// Message returns the message for field, or "".
func (e ValidationErrors) Message(field Field) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Clear removes any message for field.
func (e ValidationErrors) Clear(field Field) {
	delete(e, field)
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate computes a fresh error set for d. Name, birth date and the
// numeric fields are accepted as typed.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}
	if !ValidEmail(d.Email) {
		errs[FieldEmail] = MessageInvalidEmail
	}
	if len(Digits(d.Telefone)) != PhoneDigits {
		errs[FieldTelefone] = MessageIncompletePhone
	}
	return errs
}
