package matching

import "strings"

// Normalize lowercases text and replaces every rune that is not an ASCII
// letter, digit, or whitespace with a space. Replacing instead of deleting
// keeps punctuation-joined phrases tokenizable: "bachelor-of-science" must
// yield three words, not one glued token. Total over all inputs.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// normalizeCompact additionally collapses runs of whitespace to single
// spaces and trims, so containment checks are not defeated by layout.
func normalizeCompact(text string) string {
	return strings.Join(strings.Fields(Normalize(text)), " ")
}
