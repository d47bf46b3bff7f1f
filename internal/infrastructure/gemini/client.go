// Package gemini is a minimal client for the Gemini generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"giftai/internal/domain/value"
	"giftai/pkg/httpx"
	"giftai/pkg/logx"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"

	apiKeyHeader    = "X-Goog-Api-Key"
	maxResponseSize = 8 << 20

	statusTransportError = "transport_error"
	statusBlocked        = "blocked"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	Timeout        time.Duration
	LogFieldMaxLen int
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	configured bool

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewClient(cfg Config) *Client {
	model := lo.CoalesceOrEmpty(cfg.Model, DefaultModel)
	baseURL := strings.TrimRight(lo.CoalesceOrEmpty(cfg.BaseURL, DefaultBaseURL), "/")

	transport := httpx.NewAPIKeyRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithUpstream("gemini"),
		),
		apiKeyHeader,
		cfg.APIKey,
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		endpoint:   baseURL + "/v1beta/models/" + model + ":generateContent",
		model:      model,
		configured: cfg.APIKey != "",
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "giftai",
			Name:      "model_requests_total",
			Help:      "Language model calls by resulting status.",
		}, []string{"model", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "giftai",
			Name:      "model_request_duration_seconds",
			Help:      "Language model call latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"model"}),
	}
}

func (c *Client) WithMetrics(registerer prometheus.Registerer) *Client {
	registerer.MustRegister(c.requests, c.duration)
	return c
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.configured
}

// Complete sends a single-turn prompt and returns the concatenated text of the
// first candidate.
func (c *Client) Complete(ctx context.Context, prompt string, sampling value.Sampling) (string, error) {
	start := time.Now()

	text, status, err := c.complete(ctx, prompt, sampling)

	c.requests.WithLabelValues(c.model, status).Inc()
	c.duration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	return text, err
}

func (c *Client) complete(ctx context.Context, prompt string, sampling value.Sampling) (string, string, error) {
	body, err := json.Marshal(newRequest(prompt, sampling))
	if err != nil {
		return "", statusTransportError, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", statusTransportError, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", statusTransportError, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", status, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", status, newAPIError(resp.StatusCode, payload)
	}

	var parsed generateResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", status, fmt.Errorf("json.Unmarshal: %w", err)
	}

	text, err := parsed.text()
	if err != nil {
		return "", statusBlocked, err
	}

	return text, status, nil
}
