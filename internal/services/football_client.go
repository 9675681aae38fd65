package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultFootballAPIURL = "https://v3.football.api-sports.io"

	// UpcomingFixturesLimit is the fixed "next" parameter sent upstream.
	UpcomingFixturesLimit = 50

	apiKeyHeader    = "x-apisports-key"
	maxResponseSize = 6 << 20
)

// ErrUpstream marks failures talking to the fixtures provider.
var ErrUpstream = errors.New("fixtures provider failure")

type FootballClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	// Zero means no client-side timeout.
	Timeout time.Duration
}

// FootballClient calls the API-Football fixtures endpoint.
type FootballClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewFootballClient(cfg FootballClientConfig) *FootballClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultFootballAPIURL
	}

	return &FootballClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
	}
}

type upstreamEnvelope struct {
	Errors   jsoniter.RawMessage `json:"errors"`
	Results  int                 `json:"results"`
	Response []UpstreamFixture   `json:"response"`
}

type UpstreamFixture struct {
	Fixture struct {
		ID   int64  `json:"id"`
		Date string `json:"date"`
	} `json:"fixture"`
	League struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Logo    string `json:"logo"`
	} `json:"league"`
	Teams struct {
		Home UpstreamTeam `json:"home"`
		Away UpstreamTeam `json:"away"`
	} `json:"teams"`
}

type UpstreamTeam struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// NextFixtures fetches the next n scheduled fixtures. Network errors, non-2xx
// statuses, undecodable bodies and provider-reported errors all wrap
// ErrUpstream.
func (c *FootballClient) NextFixtures(ctx context.Context, n int) ([]UpstreamFixture, error) {
	values := url.Values{}
	values.Set("next", strconv.Itoa(n))
	fullURL := c.baseURL + "/fixtures?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", ErrUpstream, resp.StatusCode, abbreviateBody(raw))
	}

	var envelope upstreamEnvelope
	if err := jsoniter.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode provider payload: %v", ErrUpstream, err)
	}

	if hasProviderErrors(envelope.Errors) {
		return nil, fmt.Errorf("%w: provider errors=%s", ErrUpstream, abbreviateBody(envelope.Errors))
	}

	return envelope.Response, nil
}

// The provider sends errors as [] when there are none and as an object keyed
// by field otherwise.
func hasProviderErrors(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return false
	default:
		return true
	}
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
