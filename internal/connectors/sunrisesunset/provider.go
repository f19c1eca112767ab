package sunrisesunset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the public sunrise-sunset.org API.
	DefaultBaseURL = "https://api.sunrise-sunset.org"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 5 * time.Second
)

// Ensure Provider implements the port.
var _ driven.ReferenceProvider = (*Provider)(nil)

// Config holds the connector settings. Zero values pick the defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Provider fetches reference sunrise/sunset from sunrise-sunset.org.
type Provider struct {
	baseURL string
	client  *http.Client
}

// New creates a sunrise-sunset.org reference provider.
func New(cfg Config) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Provider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Name implements driven.ReferenceProvider.
func (p *Provider) Name() string { return "sunrise-sunset.org" }

type apiResponse struct {
	Results struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"results"`
	Status string `json:"status"`
}

// Fetch implements driven.ReferenceProvider.
func (p *Provider) Fetch(ctx context.Context, coord domain.GeoCoordinate, date time.Time) (*domain.ReferenceTimes, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("date", date.UTC().Format("2006-01-02"))
	// formatted=0 selects ISO-8601 with offsets instead of locale text.
	params.Set("formatted", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: sunrise-sunset.org returned %s", domain.ErrReferenceUnavailable, resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrReferenceUnavailable, err)
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("%w: status %q", domain.ErrReferenceUnavailable, body.Status)
	}

	return &domain.ReferenceTimes{
		Sunrise: parseEventTime(body.Results.Sunrise),
		Sunset:  parseEventTime(body.Results.Sunset),
	}, nil
}

// parseEventTime returns nil for absent events. The API signals polar
// day/night with epoch-zero timestamps while still reporting status OK.
func parseEventTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	if t.Unix() == 0 {
		return nil
	}
	u := t.UTC()
	return &u
}
