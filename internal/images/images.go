// Package images loads amphibian pictures in the background and decides
// what an image slot shows: a placeholder while loading, the image
// reference once loaded, a broken-image fallback on failure.
//
// A terminal cannot draw the picture itself, so "loaded" means the URL
// answered with an image and the slot shows its address.
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"amphibians/internal/trace"
)

const (
	// Placeholder is shown while an image is loading.
	Placeholder = "[ loading image… ]"
	// Fallback is shown when an image failed to load or has no URL.
	Fallback = "[ broken image ]"

	maxImageBytes = 8 << 20
)

// Status of one image URL.
type Status int

const (
	StatusUnknown Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadedMsg reports the outcome of one image load.
type LoadedMsg struct {
	URL string
	Err error
}

// Loader fetches image URLs.
type Loader struct {
	http   *http.Client
	log    zerolog.Logger
	tracer oteltrace.Tracer
}

// NewLoader returns a Loader using hc (http.DefaultClient when nil).
func NewLoader(hc *http.Client, log zerolog.Logger) *Loader {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Loader{http: hc, log: log, tracer: trace.Tracer("amphibians/images")}
}

// Load GETs url and checks that it answers 2xx with an image content type.
// The body is read and discarded.
func (l *Loader) Load(ctx context.Context, url string) error {
	ctx, span := l.tracer.Start(ctx, "images.Load",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", url)),
	)
	defer span.End()

	err := l.load(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "image load failed")
		l.log.Debug().Err(err).Str("url", url).Msg("image load failed")
	}
	return err
}

func (l *Loader) load(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Accept", "image/*")
	resp, err := l.http.Do(req)
	if err != nil {
		return fmt.Errorf("get image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("get image: %s", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("get image: unexpected content type %q", ct)
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxImageBytes)); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	return nil
}

// Tracker remembers the status of every URL requested during the session.
// Like the store it is only touched from the UI loop.
type Tracker struct {
	loader   *Loader
	statuses map[string]Status
}

// NewTracker returns an empty tracker backed by loader.
func NewTracker(loader *Loader) *Tracker {
	return &Tracker{loader: loader, statuses: make(map[string]Status)}
}

// Request starts loading url unless it is empty or already known.
// Identical URLs share one load.
func (t *Tracker) Request(ctx context.Context, url string) tea.Cmd {
	if url == "" || t.loader == nil {
		return nil
	}
	if _, ok := t.statuses[url]; ok {
		return nil
	}
	t.statuses[url] = StatusLoading
	loader := t.loader
	return func() tea.Msg {
		return LoadedMsg{URL: url, Err: loader.Load(ctx, url)}
	}
}

// RequestAll batches Request over urls.
func (t *Tracker) RequestAll(ctx context.Context, urls []string) tea.Cmd {
	var cmds []tea.Cmd
	for _, u := range urls {
		if cmd := t.Request(ctx, u); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Apply records a load result.
func (t *Tracker) Apply(msg LoadedMsg) {
	if msg.Err != nil {
		t.statuses[msg.URL] = StatusFailed
		return
	}
	t.statuses[msg.URL] = StatusLoaded
}

// Status returns what is known about url.
func (t *Tracker) Status(url string) Status {
	return t.statuses[url]
}

// Slot renders the image slot for url.
func (t *Tracker) Slot(url string) string {
	return Slot(url, t.Status(url), Placeholder, Fallback)
}

// Slot picks between placeholder, the image reference and fallback.
func Slot(url string, st Status, placeholder, fallback string) string {
	switch {
	case url == "":
		return fallback
	case st == StatusLoaded:
		return "🖼  " + url
	case st == StatusFailed:
		return fallback
	default:
		return placeholder
	}
}
