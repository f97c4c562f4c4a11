// Package placeholder fetches remote flashcard material from a
// JSONPlaceholder-style REST endpoint.
package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/flashdeck/internal/service/content"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Defaults for Config.
const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	DefaultTimeout = 10 * time.Second
)

const (
	postsPath       = "/posts"
	maxResponseSize = 4 << 20
	tracerName      = "github.com/phrazzld/flashdeck/internal/platform/placeholder"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a content.Source backed by GET {BaseURL}/posts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
}

var _ content.Source = (*Client)(nil)

// NewClient creates a Client. Empty fields in cfg take the package defaults.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracer:     otel.Tracer(tracerName),
		logger:     logger.With("component", "placeholder_client"),
	}
}

// FetchItems implements content.Source. Every failure is returned as a
// *content.NetworkError.
func (c *Client) FetchItems(ctx context.Context) ([]content.RemoteItem, error) {
	url := c.baseURL + postsPath

	ctx, span := c.tracer.Start(ctx, "placeholder.FetchItems",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", url),
		))
	defer span.End()

	items, err := c.fetch(ctx, url, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(content.KindOf(err)))
		c.logger.DebugContext(ctx, "remote fetch failed",
			"url", url,
			"kind", content.KindOf(err),
			"error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("flashdeck.items", len(items)))
	c.logger.DebugContext(ctx, "remote fetch succeeded", "url", url, "items", len(items))
	return items, nil
}

func (c *Client) fetch(ctx context.Context, url string, span trace.Span) ([]content.RemoteItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, content.NewNetworkError(content.KindTransport, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, content.NewNetworkError(classifyTransportError(err), err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, &content.NetworkError{
			Kind:       content.KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var items []content.RemoteItem
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&items); err != nil {
		if isTimeout(err) {
			return nil, content.NewNetworkError(content.KindTimeout, err)
		}
		return nil, content.NewNetworkError(content.KindDecode, fmt.Errorf("failed to decode posts: %w", err))
	}
	if len(items) == 0 {
		return nil, content.NewNetworkError(content.KindEmpty, content.ErrEmptyResponse)
	}
	return items, nil
}

func classifyTransportError(err error) content.NetworkErrorKind {
	switch {
	case isTimeout(err):
		return content.KindTimeout
	case strings.Contains(err.Error(), "CORS"):
		return content.KindCORS
	default:
		return content.KindTransport
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
