// Package network fetches the amphibian list from the remote endpoint.
package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"amphibians/internal/amphibian"
	"amphibians/internal/jsonutil"
	"amphibians/internal/trace"
)

const (
	// AmphibiansPath is joined onto the base URL.
	AmphibiansPath = "amphibians"

	tracerName      = "amphibians/network"
	defaultAgent    = "amphibians-tui"
	requestIDHeader = "X-Request-Id"
	errBodyLimit    = 512
)

// Config describes the endpoint and client limits.
type Config struct {
	BaseURL   string
	Timeout   time.Duration // zero means no client timeout
	UserAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from Config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request/response lines.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// Client issues the single GET that returns the amphibian list.
// No retry, no pagination, no caching.
type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
	log       zerolog.Logger
	tracer    oteltrace.Tracer
}

// NewClient validates cfg.BaseURL and builds a Client for <base>/amphibians.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	endpoint, err := url.JoinPath(cfg.BaseURL, AmphibiansPath)
	if err != nil {
		return nil, fmt.Errorf("build endpoint from %q: %w", cfg.BaseURL, err)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultAgent
	}
	c := &Client{
		endpoint:  endpoint,
		userAgent: ua,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       zerolog.Nop(),
		tracer:    trace.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the absolute URL requested by FetchAmphibians.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchAmphibians performs one GET and decodes the JSON array, preserving order.
// Errors are *FetchError: transport failures, non-2xx statuses and
// undecodable bodies each get their own Kind.
func (c *Client) FetchAmphibians(ctx context.Context) ([]amphibian.Amphibian, error) {
	const op = "fetch amphibians"
	requestID := uuid.NewString()
	log := c.log.With().Str("request_id", requestID).Str("url", c.endpoint).Logger()

	ctx, span := c.tracer.Start(ctx, "network.FetchAmphibians",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", c.endpoint),
			attribute.String("amphibians.request_id", requestID),
		),
	)
	defer span.End()

	fail := func(fe *FetchError) ([]amphibian.Amphibian, error) {
		span.RecordError(fe)
		span.SetStatus(codes.Error, string(fe.Kind))
		log.Warn().Err(fe.Err).Str("kind", string(fe.Kind)).Int("status", fe.StatusCode).Msg("fetch failed")
		return nil, fe
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return fail(&FetchError{Op: op, Kind: KindTransport, URL: c.endpoint, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	log.Debug().Msg("fetch started")
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(&FetchError{Op: op, Kind: KindTransport, URL: c.endpoint, Err: err})
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return fail(&FetchError{
			Op:         op,
			Kind:       KindHTTPStatus,
			URL:        c.endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(statusText(resp, snippet)),
		})
	}

	list, err := jsonutil.DecodeArray[amphibian.Amphibian](resp.Body, "decode amphibians")
	if err != nil {
		kind := KindDecode
		if ctx.Err() != nil {
			kind = KindTransport
		}
		return fail(&FetchError{Op: op, Kind: kind, URL: c.endpoint, Err: err})
	}

	span.SetAttributes(attribute.Int("amphibians.count", len(list)))
	ev := log.Info().Int("count", len(list)).Dur("elapsed", time.Since(start))
	if dups := amphibian.DuplicateNames(list); len(dups) > 0 {
		ev = ev.Strs("duplicate_names", dups)
	}
	ev.Msg("fetch succeeded")
	return list, nil
}

func statusText(resp *http.Response, snippet []byte) string {
	msg := resp.Status
	if body := strings.TrimSpace(string(snippet)); body != "" {
		msg += ": " + body
	}
	return msg
}

