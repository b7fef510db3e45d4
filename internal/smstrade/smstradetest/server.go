// Package smstradetest provides an in-process stand-in for the smstrade
// gateway so callers can exercise MessageRequest.Send without network access.
package smstradetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Gateway answers every send with a fixed result code and records what it received.
type Gateway struct {
	*httptest.Server

	mu       sync.Mutex
	code     int
	detail   string
	status   int
	requests []url.Values
}

// NewGateway starts a stub gateway replying with code.
func NewGateway(code int) *Gateway {
	g := &Gateway{code: code, status: http.StatusOK}
	r := chi.NewRouter()
	r.Get("/", g.handleSend)
	g.Server = httptest.NewServer(r)
	return g
}

// SetReply changes the result code and trailing text of later replies.
func (g *Gateway) SetReply(code int, detail string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.code = code
	g.detail = detail
}

// SetStatus makes later replies use the given HTTP status.
func (g *Gateway) SetStatus(status int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
}

// Params returns the query of the most recent request, or nil.
func (g *Gateway) Params() url.Values {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return nil
	}
	return g.requests[len(g.requests)-1]
}

// Calls returns how many sends the gateway has received.
func (g *Gateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *Gateway) handleSend(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.requests = append(g.requests, r.URL.Query())
	code, detail, status := g.code, g.detail, g.status
	g.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if detail == "" {
		fmt.Fprintf(w, "%d", code)
		return
	}
	fmt.Fprintf(w, "%d\n%s", code, detail)
}
