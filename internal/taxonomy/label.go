package taxonomy

import "strings"

// Label is a parsed taxonomy label, either the 3-level key form
// (domain.category.type) or the 4-level locale-qualified form
// (domain.category.type.LOCALE).
type Label struct {
	Domain   string
	Category string
	Type     string
	Locale   string // "" when the label has no locale segment
}

// ParseLabel splits a raw label string into its segments. It accepts
// both 3-level and 4-level forms; any other segment count is rejected.
func ParseLabel(raw string) (Label, bool) {
	parts := strings.Split(raw, ".")
	switch len(parts) {
	case 3:
		return Label{Domain: parts[0], Category: parts[1], Type: parts[2]}, true
	case 4:
		return Label{Domain: parts[0], Category: parts[1], Type: parts[2], Locale: parts[3]}, true
	default:
		return Label{}, false
	}
}

// Key returns the 3-level form, dropping any locale segment.
func (l Label) Key() string {
	return l.Domain + "." + l.Category + "." + l.Type
}

// WithLocale returns the 4-level form qualified by locale.
func (l Label) WithLocale(locale string) string {
	return l.Key() + "." + locale
}

// String returns the 4-level form if a locale is set, else the 3-level form.
func (l Label) String() string {
	if l.Locale == "" {
		return l.Key()
	}
	return l.WithLocale(l.Locale)
}
