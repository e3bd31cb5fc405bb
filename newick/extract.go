package newick

import (
	"strings"
)

const (
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	lengthStart   = ':'
	labelSuffix   = '-'
)

// extractClade returns the leftmost innermost clade of text, i.e., the text
// from the last '(' that precedes the first ')' up to and including that
// ')', followed by any support value written directly after it. The support
// value ends at the first ':', ',' or ')' after the clade, or at the end of
// the text. Only the text of the clade is returned; text is not modified.
//
// If text does not contain a complete clade, then false is returned.
func extractClade(text string) (string, bool) {
	open, end := -1, -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case descStart:
			// Any group seen so far is not innermost.
			open = i
		case descEnd, descDelimiter, lengthStart:
			if open >= 0 && end > open {
				return text[open:i], true
			}
			if text[i] == descEnd {
				end = i
			}
		}
	}
	if open < 0 || end < open {
		return "", false
	}
	return text[open:], true
}

// splitClade splits a clade returned by extractClade into its branches and
// its support value. The support value is empty when the clade has none.
func splitClade(clade string) (branches []string, support string) {
	end := strings.IndexByte(clade, descEnd)
	body := clade[1:end]
	return strings.Split(body, string(descDelimiter)), clade[end+1:]
}

// stripBlanks removes all blanks and new lines from s. They may not occur in
// an unquoted label.
func stripBlanks(s string) string {
	return strings.Map(func(r rune) rune {
		if isBlank(r) || isNL(r) {
			return -1
		}
		return r
	}, s)
}

func isBlank(r rune) bool {
	return r == '\t' || r == ' '
}

func isNL(r rune) bool {
	return r == '\n' || r == '\r'
}
