package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.GeocodeCache = (*Store)(nil)

// Get retrieves a cached place. Expired entries report a miss; they are
// deleted lazily on the next Put or by PurgeExpired.
func (s *Store) Get(ctx context.Context, key string) (*domain.Place, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT lat, lon, elevation_m, display_name
		FROM geocache
		WHERE key = ? AND expires_at > ?
	`, key, s.now().Unix())

	var place domain.Place
	err := row.Scan(
		&place.Coordinate.Lat,
		&place.Coordinate.Lon,
		&place.Coordinate.ElevationM,
		&place.DisplayName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying geocache: %w", err)
	}
	return &place, true, nil
}

// Put stores or replaces a cached place, refreshing its expiry.
func (s *Store) Put(ctx context.Context, key string, place *domain.Place) error {
	now := s.now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO geocache (key, lat, lon, elevation_m, display_name, stored_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			lat = excluded.lat,
			lon = excluded.lon,
			elevation_m = excluded.elevation_m,
			display_name = excluded.display_name,
			stored_at = excluded.stored_at,
			expires_at = excluded.expires_at
	`, key,
		place.Coordinate.Lat,
		place.Coordinate.Lon,
		place.Coordinate.ElevationM,
		place.DisplayName,
		now.Unix(),
		now.Add(s.ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("upserting geocache entry: %w", err)
	}
	return nil
}

// PurgeExpired removes entries past their expiry and returns how many
// were dropped. Called from serve-mode housekeeping.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM geocache WHERE expires_at <= ?", s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purging expired entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged entries: %w", err)
	}
	return n, nil
}
