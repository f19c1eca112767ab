package openmeteo

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
	// DefaultBaseURL is the public Open-Meteo forecast API.
	DefaultBaseURL = "https://api.open-meteo.com"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 5 * time.Second

	// timeLayout is Open-Meteo's ISO-8601 minute resolution with
	// timezone=UTC requested, so no offset suffix.
	timeLayout = "2006-01-02T15:04"
)

// Ensure Provider implements the port.
var _ driven.ReferenceProvider = (*Provider)(nil)

// Config holds the connector settings. Zero values pick the defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Provider fetches reference sunrise/sunset from Open-Meteo.
type Provider struct {
	baseURL string
	client  *http.Client
}

// New creates an Open-Meteo reference provider.
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
func (p *Provider) Name() string { return "open-meteo" }

type forecastResponse struct {
	Daily struct {
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}

// Fetch implements driven.ReferenceProvider.
func (p *Provider) Fetch(ctx context.Context, coord domain.GeoCoordinate, date time.Time) (*domain.ReferenceTimes, error) {
	day := date.UTC().Format("2006-01-02")

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("daily", "sunrise,sunset")
	params.Set("timezone", "UTC")
	params.Set("start_date", day)
	params.Set("end_date", day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building forecast request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: open-meteo returned %s", domain.ErrReferenceUnavailable, resp.Status)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrReferenceUnavailable, err)
	}
	if len(body.Daily.Sunrise) == 0 || len(body.Daily.Sunset) == 0 {
		return nil, fmt.Errorf("%w: empty daily block", domain.ErrReferenceUnavailable)
	}

	return &domain.ReferenceTimes{
		Sunrise: parseEventTime(body.Daily.Sunrise[0]),
		Sunset:  parseEventTime(body.Daily.Sunset[0]),
	}, nil
}

// parseEventTime returns nil for absent events: Open-Meteo reports
// polar days with empty or unparsable strings rather than an error.
func parseEventTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
