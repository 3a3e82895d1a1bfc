package gog

import (
	"strings"
	"unicode"
)

// DefaultCommentChar starts a comment that runs to the end of the line.
const DefaultCommentChar = '#'

// metaComments are comment-prefixed keywords that still carry data.
var metaComments = []string{"kml_icon"}

// Line is one non-empty physical line split into a keyword and its arguments.
type Line struct {
	// Number is the 1-based line number in the source.
	Number int

	// Keyword is the first token, lower-cased.
	Keyword string

	// Args is the verbatim remainder after the keyword, trimmed.
	Args string
}

// Fields splits Args on whitespace.
func (l Line) Fields() []string {
	return strings.Fields(l.Args)
}

// NormalizeLine strips the comment from text, trims it and splits off the
// keyword. It reports false for lines that are empty once the comment is
// removed. A comment whose first word is a meta-comment keyword such as
// kml_icon is kept as a regular line.
func NormalizeLine(text string, comment rune) (Line, bool) {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, string(comment)); ok && isMetaComment(rest) {
		text = strings.TrimSpace(rest)
	} else if i := strings.IndexRune(text, comment); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if text == "" {
		return Line{}, false
	}

	keyword, args := splitWord(text)
	return Line{Keyword: strings.ToLower(keyword), Args: args}, true
}

func isMetaComment(s string) bool {
	word, _ := splitWord(strings.TrimSpace(s))
	for _, m := range metaComments {
		if strings.EqualFold(word, m) {
			return true
		}
	}
	return false
}

// splitWord returns the first whitespace-delimited word of s and the trimmed rest.
func splitWord(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
