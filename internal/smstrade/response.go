package smstrade

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeSent is the gateway result code for an accepted message.
const CodeSent = 100

var codeDescriptions = map[int]string{
	10:  "receiver number invalid",
	20:  "sender id invalid",
	30:  "message text invalid",
	31:  "message type invalid",
	40:  "route invalid",
	50:  "identification failed",
	60:  "insufficient credit",
	70:  "network not covered by route",
	71:  "feature not available on route",
	80:  "handover to SMSC failed",
	100: "SMS sent",
}

// Response is the parsed gateway answer.
type Response struct {
	Code int
	Body string
}

// OK reports whether the gateway accepted the message.
func (r *Response) OK() bool {
	return r.Code == CodeSent
}

// Detail returns whatever followed the result code in the body.
func (r *Response) Detail() string {
	_, rest := splitLeadingDigits(strings.TrimLeft(r.Body, " \t\r\n"))
	return strings.TrimSpace(rest)
}

// Description is a human readable form of Code.
func (r *Response) Description() string {
	if desc, ok := codeDescriptions[r.Code]; ok {
		return desc
	}
	return fmt.Sprintf("unknown result code %d", r.Code)
}

func parseResponse(body string) (*Response, error) {
	digits, _ := splitLeadingDigits(strings.TrimLeft(body, " \t\r\n"))
	if digits == "" {
		return nil, fmt.Errorf("%w: no leading result code in %q", ErrMalformedResponse, truncate(body, 64))
	}
	code, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: result code %q: %w", ErrMalformedResponse, digits, err)
	}
	return &Response{Code: code, Body: body}, nil
}

func splitLeadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
