package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLang is the document language when none is configured.
const DefaultLang = "pt-BR"

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// LangAttribute normalizes a locale for the html lang attribute.
func LangAttribute(locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return DefaultLang
	}
	return tag.String()
}

const currencyPrefixKey = "core.currency_prefix"

// Money prefixes an already formatted amount with the currency symbol.
func Money(loc Localizer, amount string) string {
	prefix := "R$"
	if loc != nil {
		prefix = T(loc, currencyPrefixKey)
	}
	return prefix + " " + amount
}
