package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateCommentChar checks that s is usable as the comment character of
// the text format. It must be exactly one printable character that cannot
// begin a keyword or a number.
func ValidateCommentChar(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return New(ErrCodeInvalidInput, "comment character must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case unicode.IsSpace(r), unicode.IsControl(r):
		return New(ErrCodeInvalidInput, "comment character cannot be whitespace or a control character")
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return New(ErrCodeInvalidInput, "comment character cannot be a letter or digit: %q", s)
	case strings.ContainsRune("-+.", r):
		return New(ErrCodeInvalidInput, "comment character cannot be part of a number: %q", s)
	}
	return nil
}

// ValidatePath validates a source file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
