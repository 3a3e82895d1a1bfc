package errors

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeMissingField, "%s has no center", "circle"), "MISSING_FIELD: circle has no center"},
		{"wrap", Wrap(ErrCodeReadFailed, cause, "read line %d", 12), "READ_FAILED: read line 12: unexpected EOF"},
		{"wrap nil cause", Wrap(ErrCodeInternal, nil, "boom"), "INTERNAL_ERROR: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeReadFailed, cause, "read")

	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeStructure, "test"),
			code:     ErrCodeStructure,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeStructure, "test"),
			code:     ErrCodeMissingField,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeReadFailed, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeReadFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidField, "test"), ErrCodeInvalidField},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(ErrCodeInvalidInput, "x"), 400},
		{New(ErrCodeMissingField, "x"), 400},
		{New(ErrCodeFileNotFound, "x"), 404},
		{New(ErrCodeTooLarge, "x"), 413},
		{New(ErrCodeUnsupported, "x"), 501},
		{Wrap(ErrCodeReadFailed, errors.New("eof"), "x"), 500},
		{errors.New("plain"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
