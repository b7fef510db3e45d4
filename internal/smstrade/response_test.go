package smstrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		code   int
		detail string
	}{
		{"bare code", "100", 100, ""},
		{"newline detail", "100\n4711", 100, "4711"},
		{"space detail", "60 insufficient credit", 60, "insufficient credit"},
		{"leading whitespace", "\n 10", 10, ""},
		{"stub code", "999", 999, ""},
		{"glued text", "80abc", 80, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := parseResponse(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.body, resp.Body)
			assert.Equal(t, tt.detail, resp.Detail())
		})
	}
}

func TestParseResponseWithoutCode(t *testing.T) {
	for _, body := range []string{"", "   ", "error", "-1", "99999999999999999999999"} {
		_, err := parseResponse(body)
		assert.ErrorIs(t, err, ErrMalformedResponse, "body %q", body)
	}
}

func TestResponseDescription(t *testing.T) {
	assert.True(t, (&Response{Code: 100}).OK())
	assert.False(t, (&Response{Code: 10}).OK())
	assert.Equal(t, "receiver number invalid", (&Response{Code: 10}).Description())
	assert.Equal(t, "insufficient credit", (&Response{Code: 60}).Description())
	assert.Equal(t, "unknown result code 999", (&Response{Code: 999}).Description())
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute(" direct ")
	require.NoError(t, err)
	assert.Equal(t, RouteDirect, r)
	assert.True(t, r.AllowsSender())
	assert.False(t, RouteBasic.AllowsSender())
	assert.Equal(t, "gold", RouteGold.String())
}
