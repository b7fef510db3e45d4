package smstrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/wolfman30/smstrade/internal/config"
	"github.com/wolfman30/smstrade/internal/observability/metrics"
	"github.com/wolfman30/smstrade/pkg/logging"
)

const (
	// DefaultEndpoint is the public smstrade HTTP gateway.
	DefaultEndpoint  = "https://gateway.smstrade.de/"
	defaultUserAgent = "smstrade-go/0.1"
	maxBodyBytes     = 64 << 10
)

var sendTracer = otel.Tracer("smstrade.internal.smstrade")

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the gateway client behaves.
type Config struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient Doer
	Logger     *logging.Logger
	Metrics    *metrics.GatewayMetrics
	UserAgent  string
}

// Client holds transport and observability settings shared by the requests
// it creates. It is immutable and safe to share.
type Client struct {
	endpoint   *url.URL
	httpClient Doer
	logger     *logging.Logger
	metrics    *metrics.GatewayMetrics
	userAgent  string
}

// NewClient creates a configured Client with sane defaults.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.Endpoint)
	if raw == "" {
		raw = DefaultEndpoint
	}
	endpoint, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("smstrade: parse endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("smstrade: endpoint %q must be http or https", raw)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
		metrics:    cfg.Metrics,
		userAgent:  userAgent,
	}, nil
}

// NewClientFromConfig builds a Client from environment configuration.
func NewClientFromConfig(cfg *config.Config, logger *logging.Logger, m *metrics.GatewayMetrics) (*Client, error) {
	if logger == nil {
		logger = logging.New(cfg.LogLevel)
	}
	return NewClient(Config{
		Endpoint:  cfg.Endpoint,
		Timeout:   cfg.Timeout,
		Logger:    logger,
		Metrics:   m,
		UserAgent: cfg.UserAgent,
	})
}

// ParamsFromConfig turns configured defaults into Params. Empty values are
// left absent so the request defaults apply.
func ParamsFromConfig(cfg *config.Config) Params {
	p := Params{
		Debug:  Bool(cfg.Debug),
		Concat: Bool(cfg.Concat),
	}
	if cfg.APIKey != "" {
		p.Key = String(cfg.APIKey)
	}
	if cfg.Route != "" {
		p.Route = String(cfg.Route)
	}
	if cfg.From != "" {
		p.From = String(cfg.From)
	}
	if cfg.Charset != "" {
		p.Charset = String(cfg.Charset)
	}
	return p
}

var (
	defaultOnce   sync.Once
	defaultShared *Client
)

func defaultClient() *Client {
	defaultOnce.Do(func() {
		c, err := NewClient(Config{})
		if err != nil {
			panic(err)
		}
		defaultShared = c
	})
	return defaultShared
}

// NewMessage validates p and returns a request bound to c.
func (c *Client) NewMessage(p Params) (*MessageRequest, error) {
	return newMessageRequest(c, p)
}

// Send validates overrides against the current state, then performs exactly
// one GET against the gateway and parses the result code.
func (r *MessageRequest) Send(ctx context.Context, overrides Params) (*Response, error) {
	if err := r.apply(overrides); err != nil {
		return nil, err
	}
	c := r.client
	if c == nil {
		c = defaultClient()
	}

	ctx, span := sendTracer.Start(ctx, "smstrade.send")
	defer span.End()
	span.SetAttributes(
		attribute.String("smstrade.request_id", r.RequestID()),
		attribute.String("smstrade.route", r.route.String()),
		attribute.Bool("smstrade.debug", r.debug == 1),
	)

	resp, err := c.do(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("smstrade.code", resp.Code))
	return resp, nil
}

func (c *Client) do(ctx context.Context, r *MessageRequest) (*Response, error) {
	route := r.route.String()
	target := *c.endpoint
	target.RawQuery = mergeQuery(c.endpoint.Query(), r.Query()).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("smstrade: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("smstrade request",
		"request_id", r.RequestID(),
		"route", route,
		"to", logging.MaskPhone(r.to),
		"debug", r.debug,
		"concat", r.concat,
	)

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	c.metrics.ObserveLatency(route, time.Since(start).Seconds())
	if err != nil {
		c.metrics.ObserveTransportError(route)
		c.logger.Warn("smstrade transport error", "request_id", r.RequestID(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.ObserveTransportError(route)
		return nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.metrics.ObserveTransportError(route)
		c.logger.Warn("smstrade gateway http error", "request_id", r.RequestID(), "status", httpResp.StatusCode)
		return nil, fmt.Errorf("%w: http status %d", ErrTransport, httpResp.StatusCode)
	}

	resp, err := parseResponse(string(data))
	if err != nil {
		return nil, err
	}
	c.metrics.ObserveResult(route, resp.Code)
	c.logger.Info("smstrade sms sent",
		"request_id", r.RequestID(),
		"route", route,
		"to", logging.MaskPhone(r.to),
		"code", resp.Code,
		"ok", resp.OK(),
	)
	return resp, nil
}

// mergeQuery lets request parameters win over any query baked into the endpoint.
func mergeQuery(base, params url.Values) url.Values {
	out := url.Values{}
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range params {
		out[k] = v
	}
	return out
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrInvalidOption) || errors.Is(err, ErrInvalidRoute)
}
