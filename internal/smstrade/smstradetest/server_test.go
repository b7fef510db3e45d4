package smstradetest

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayRecordsParams(t *testing.T) {
	g := NewGateway(999)
	defer g.Close()

	resp, err := http.Get(g.URL + "/?to=%2B1234&message=hi+there")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, "999", string(body))
	assert.Equal(t, 1, g.Calls())
	assert.Equal(t, "+1234", g.Params().Get("to"))
	assert.Equal(t, "hi there", g.Params().Get("message"))
}

func TestGatewayReplyOverrides(t *testing.T) {
	g := NewGateway(100)
	defer g.Close()
	assert.Nil(t, g.Params())

	g.SetReply(60, "no credit")
	g.SetStatus(http.StatusBadGateway)

	resp, err := http.Get(g.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "60\nno credit", string(body))
}

func TestGatewayRejectsOtherMethods(t *testing.T) {
	g := NewGateway(100)
	defer g.Close()

	resp, err := http.Post(g.URL+"/", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, 0, g.Calls())
}
