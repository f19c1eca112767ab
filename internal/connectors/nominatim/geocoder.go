package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultUserAgent identifies us per the Nominatim usage policy,
	// which rejects anonymous clients.
	DefaultUserAgent = "heliotime/1.0 (+https://github.com/helio-labs/heliotime)"

	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 5 * time.Second

	// requestsPerSecond is the usage-policy ceiling for the public
	// instance: at most one request per second.
	requestsPerSecond = 1
)

// Ensure Geocoder implements the port.
var _ driven.Geocoder = (*Geocoder)(nil)

// Config holds the connector settings. Zero values pick the defaults.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Geocoder resolves place queries against a Nominatim server.
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// New creates a Nominatim geocoder.
func New(cfg Config) *Geocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Geocoder{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// searchResult is the subset of the Nominatim response we consume.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	ExtraTags   struct {
		Ele string `json:"ele"`
	} `json:"extratags"`
}

// Search implements driven.Geocoder.
func (g *Geocoder) Search(ctx context.Context, query domain.GeocodeQuery) (*domain.Place, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: nominatim returned %s", domain.ErrGeocodingFailed, resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrGeocodingFailed, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no match for %q", domain.ErrGeocodingFailed, query.CacheKey())
	}

	return placeFromResult(results[0])
}

// searchURL builds the query URL. extratags carries the elevation when
// the place has one tagged.
func (g *Geocoder) searchURL(query domain.GeocodeQuery) string {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("extratags", "1")

	if query.PostalCode != "" {
		params.Set("postalcode", query.PostalCode)
		params.Set("countrycodes", strings.ToLower(query.CountryCode))
	} else {
		q := query.City
		if query.Country != "" {
			q += ", " + query.Country
		}
		params.Set("q", q)
	}

	return g.baseURL + "/search?" + params.Encode()
}

func placeFromResult(r searchResult) (*domain.Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", domain.ErrGeocodingFailed, r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", domain.ErrGeocodingFailed, r.Lon)
	}

	coord := domain.GeoCoordinate{Lat: lat, Lon: lon}
	if r.ExtraTags.Ele != "" {
		// Elevation is best-effort: ignore unparsable tags.
		if ele, err := strconv.ParseFloat(r.ExtraTags.Ele, 64); err == nil {
			coord.ElevationM = ele
		}
	}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("%w: out-of-range result", domain.ErrGeocodingFailed)
	}

	return &domain.Place{Coordinate: coord, DisplayName: r.DisplayName}, nil
}
