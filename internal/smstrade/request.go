package smstrade

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// MessageRequest is a single validated SMS send. It is built once, may be
// adjusted through its setters, and is then sent. It is not safe for
// concurrent use.
type MessageRequest struct {
	client *Client
	id     uuid.UUID

	key     string
	to      string
	from    string
	message string
	route   Route
	debug   int
	concat  int
	charset string
}

// New validates p and returns a request bound to the default client.
func New(p Params) (*MessageRequest, error) {
	return defaultClient().NewMessage(p)
}

func newMessageRequest(c *Client, p Params) (*MessageRequest, error) {
	r := &MessageRequest{
		client:  c,
		id:      uuid.New(),
		route:   DefaultRoute,
		charset: DefaultCharset,
	}
	if err := r.apply(p); err != nil {
		return nil, err
	}
	return r, nil
}

// apply validates p against the current state and commits every field or none.
func (r *MessageRequest) apply(p Params) error {
	next := *r
	if err := next.assign(p); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *MessageRequest) assign(p Params) error {
	if p.Route != nil {
		route, err := ParseRoute(*p.Route)
		if err != nil {
			return err
		}
		r.route = route
	}
	if p.To != nil {
		to, err := NormalizeRecipient(*p.To)
		if err != nil {
			return err
		}
		r.to = to
	}
	if p.From != nil {
		if !r.route.AllowsSender() {
			return &FieldError{Field: "from", Value: *p.From, Reason: "requires route gold or direct, got " + r.route.String(), Err: ErrInvalidOption}
		}
		from, err := NormalizeSender(*p.From)
		if err != nil {
			return err
		}
		r.from = from
	}
	if p.Debug != nil {
		r.debug = boolFlag(*p.Debug)
	}
	if p.Concat != nil {
		r.concat = boolFlag(*p.Concat)
	}
	if p.Charset != nil && *p.Charset != "" {
		r.charset = *p.Charset
	}
	if p.Message != nil {
		r.message = *p.Message
	}
	if p.Key != nil {
		r.key = *p.Key
	}
	return nil
}

// RequestID correlates log lines and spans for this request.
func (r *MessageRequest) RequestID() string {
	return r.id.String()
}

func (r *MessageRequest) Key() string {
	return r.key
}

// To returns the normalized recipient. A valid recipient only holds digits
// and a leading +, which is kept literal here and encoded on the wire.
func (r *MessageRequest) To() string {
	return r.to
}

// From returns the sender id query-encoded.
func (r *MessageRequest) From() string {
	return url.QueryEscape(r.from)
}

// RawFrom returns the normalized sender id as stored.
func (r *MessageRequest) RawFrom() string {
	return r.from
}

// Message returns the message text query-encoded (space becomes +).
func (r *MessageRequest) Message() string {
	return url.QueryEscape(r.message)
}

// RawMessage returns the message text as stored.
func (r *MessageRequest) RawMessage() string {
	return r.message
}

func (r *MessageRequest) Route() Route {
	return r.route
}

// Debug returns 1 when debug mode is on, otherwise 0.
func (r *MessageRequest) Debug() int {
	return r.debug
}

// Concat returns 1 when multi-part messages are enabled, otherwise 0.
func (r *MessageRequest) Concat() int {
	return r.concat
}

func (r *MessageRequest) Charset() string {
	return r.charset
}

func (r *MessageRequest) SetKey(key string) {
	r.key = key
}

func (r *MessageRequest) SetTo(to string) error {
	return r.apply(Params{To: &to})
}

func (r *MessageRequest) SetFrom(from string) error {
	return r.apply(Params{From: &from})
}

func (r *MessageRequest) SetMessage(message string) {
	r.message = message
}

func (r *MessageRequest) SetRoute(route string) error {
	return r.apply(Params{Route: &route})
}

func (r *MessageRequest) SetDebug(debug bool) {
	r.debug = boolFlag(debug)
}

func (r *MessageRequest) SetConcat(concat bool) {
	r.concat = boolFlag(concat)
}

// SetCharset overrides the charset; an empty value keeps the current one.
func (r *MessageRequest) SetCharset(charset string) {
	if charset != "" {
		r.charset = charset
	}
}

// Query renders the outbound gateway parameters without sending them.
func (r *MessageRequest) Query() url.Values {
	q := url.Values{}
	q.Set("key", r.key)
	q.Set("to", r.to)
	q.Set("message", r.message)
	q.Set("route", r.route.String())
	q.Set("debug", strconv.Itoa(r.debug))
	if r.concat == 1 {
		q.Set("concat", "1")
	}
	if r.route.AllowsSender() && r.from != "" {
		q.Set("from", r.from)
	}
	q.Set("charset", r.charset)
	return q
}
