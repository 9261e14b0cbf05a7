package templates

// MainID is the element id HTMX requests swap.
const MainID = "main"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Title       string
	Description string
	HTMXURL     string
}

func (p PageContext) lang() string {
	if p.Lang == "" {
		return DefaultLang
	}
	return p.Lang
}
