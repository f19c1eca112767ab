package cli

import (
	"fmt"
	"time"

	"github.com/helio-labs/heliotime/internal/adapters/driven/config/file"
	"github.com/helio-labs/heliotime/internal/adapters/driven/storage/memory"
	"github.com/helio-labs/heliotime/internal/adapters/driven/storage/sqlite"
	"github.com/helio-labs/heliotime/internal/adapters/driven/timezone"
	"github.com/helio-labs/heliotime/internal/connectors/nominatim"
	"github.com/helio-labs/heliotime/internal/connectors/openmeteo"
	"github.com/helio-labs/heliotime/internal/connectors/sunrisesunset"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
	"github.com/helio-labs/heliotime/internal/core/services"
	"github.com/helio-labs/heliotime/internal/logger"
)

// Configuration keys.
const (
	keyListenAddr          = "server.listen_addr"
	keyMaxRangeDays        = "sun.max_range_days"
	keyGeocoderBaseURL     = "geocoder.base_url"
	keyGeocoderUserAgent   = "geocoder.user_agent"
	keyCacheBackend        = "cache.backend"
	keyCacheTTLDays        = "cache.ttl_days"
	keyCrossCheckEnabled   = "crosscheck.enabled"
	keyCrossCheckProvider  = "crosscheck.provider"
	keyCrossCheckTolerance = "crosscheck.tolerance_sec"
	keyCrossCheckEnforce   = "crosscheck.enforce"
)

// DefaultListenAddr is where serve binds without configuration.
const DefaultListenAddr = ":8080"

// initServices builds the full service graph from configuration.
func initServices() error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	cache, err := buildGeocodeCache(store)
	if err != nil {
		return err
	}

	geocoder := nominatim.New(nominatim.Config{
		BaseURL:   store.GetString(keyGeocoderBaseURL),
		UserAgent: store.GetString(keyGeocoderUserAgent),
	})

	locationService = services.NewLocationService(geocoder, cache)
	sunService = services.NewSunService(timezone.New(), store.GetInt(keyMaxRangeDays))

	if store.GetBool(keyCrossCheckEnabled) {
		crossChecker = services.NewCrossCheckService(
			buildReferenceProvider(store),
			store.GetInt(keyCrossCheckTolerance),
			store.GetBool(keyCrossCheckEnforce),
		)
	}

	return nil
}

// buildGeocodeCache picks the cache backend. The sqlite backend is the
// default: CLI runs are short-lived, so an in-process cache would never
// hit.
func buildGeocodeCache(store driven.ConfigStore) (driven.GeocodeCache, error) {
	ttl := time.Duration(store.GetInt(keyCacheTTLDays)) * 24 * time.Hour

	switch backend := store.GetString(keyCacheBackend); backend {
	case "memory":
		logger.Debug("using in-memory geocode cache")
		return memory.NewGeocodeCache(ttl), nil
	case "", "sqlite":
		cache, err := sqlite.NewStore(dataDir(), ttl)
		if err != nil {
			return nil, fmt.Errorf("opening geocode cache: %w", err)
		}
		logger.Debug("geocode cache at %s", cache.Path())
		return cache, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}

// dataDir derives the data directory from the config dir flag; empty
// means the sqlite store's own default.
func dataDir() string {
	if configDirFlag == "" {
		return ""
	}
	return configDirFlag + "/data"
}

func buildReferenceProvider(store driven.ConfigStore) driven.ReferenceProvider {
	switch provider := store.GetString(keyCrossCheckProvider); provider {
	case "sunrise-sunset.org":
		return sunrisesunset.New(sunrisesunset.Config{})
	default:
		return openmeteo.New(openmeteo.Config{})
	}
}
