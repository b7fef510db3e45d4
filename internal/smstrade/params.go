package smstrade

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultCharset is sent when no charset is configured.
const DefaultCharset = "UTF-8"

// MaxSenderLength is the longest sender id the gateway accepts.
const MaxSenderLength = 16

var recipientPattern = regexp.MustCompile(`^\+?\d+$`)

// Params carries the recognized request fields. Nil fields are absent and
// leave the current value (or its default) untouched.
type Params struct {
	Key     *string
	To      *string
	From    *string
	Message *string
	Route   *string
	Debug   *bool
	Concat  *bool
	Charset *string
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// NormalizeRecipient strips whitespace, dashes and parentheses and checks the
// result is an optional + followed by digits.
func NormalizeRecipient(value string) (string, error) {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, value)
	if !recipientPattern.MatchString(normalized) {
		return "", &FieldError{Field: "to", Value: value, Reason: "expected digits with optional leading +", Err: ErrInvalidFormat}
	}
	return normalized, nil
}

// NormalizeSender strips dashes, parentheses and surrounding whitespace from a
// sender id and enforces MaxSenderLength on the result. Inner spaces are part
// of alphanumeric sender ids and are kept.
func NormalizeSender(value string) (string, error) {
	normalized := strings.Map(func(r rune) rune {
		if r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, strings.TrimSpace(value))
	if utf8.RuneCountInString(normalized) > MaxSenderLength {
		return "", &FieldError{Field: "from", Value: value, Reason: "longer than 16 characters", Err: ErrInvalidFormat}
	}
	return normalized, nil
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
