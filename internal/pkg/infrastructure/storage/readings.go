package storage

import (
	"context"
	"time"

	"github.com/greenmesh/iot-moisture-svc/pkg/types"
	"github.com/jackc/pgx/v5"
)

const queryTimeout = 10 * time.Second

func (s *Storage) AddReading(ctx context.Context, potID string, location *string, rawValue, moisturePercent float64) (types.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := pgx.NamedArgs{
		"pot_id":           potID,
		"location":         location,
		"raw_value":        rawValue,
		"moisture_percent": moisturePercent,
	}

	reading := types.Reading{
		PotID:           potID,
		Location:        location,
		RawValue:        rawValue,
		MoisturePercent: moisturePercent,
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO readings (pot_id, location, raw_value, moisture_percent)
		VALUES (@pot_id, @location, @raw_value, @moisture_percent)
		RETURNING id, timestamp
	`, args).Scan(&reading.ID, &reading.Timestamp)
	if err != nil {
		return types.Reading{}, err
	}

	return reading, nil
}

func (s *Storage) QueryReadings(ctx context.Context, potID string, limit int) ([]types.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := pgx.NamedArgs{
		"pot_id": potID,
		"limit":  limit,
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, pot_id, location, raw_value, moisture_percent, timestamp
		FROM readings
		WHERE pot_id = @pot_id
		ORDER BY timestamp DESC
		LIMIT @limit
	`, args)
	if err != nil {
		return nil, err
	}

	return collectReadings(rows)
}

// LatestPerPot returns the most recent reading for each distinct pot, ordered
// by pot id. When a pot has several readings sharing its maximum timestamp,
// which of them is returned is left to the store.
func (s *Storage) LatestPerPot(ctx context.Context) ([]types.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT ON (pot_id) id, pot_id, location, raw_value, moisture_percent, timestamp
		FROM readings
		ORDER BY pot_id ASC, timestamp DESC
	`)
	if err != nil {
		return nil, err
	}

	return collectReadings(rows)
}

// ListPots summarises the stored readings grouped by (pot_id, location), so a
// pot that has reported under more than one location yields one row per pair.
func (s *Storage) ListPots(ctx context.Context) ([]types.PotSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT pot_id, location, COUNT(*) AS reading_count, MAX(timestamp) AS last_reading
		FROM readings
		GROUP BY pot_id, location
		ORDER BY pot_id ASC
	`)
	if err != nil {
		return nil, err
	}

	var potID string
	var location *string
	var readingCount int64
	var lastReading time.Time

	pots := make([]types.PotSummary, 0)

	_, err = pgx.ForEachRow(rows, []any{&potID, &location, &readingCount, &lastReading}, func() error {
		pots = append(pots, types.PotSummary{
			PotID:        potID,
			Location:     location,
			ReadingCount: readingCount,
			LastReading:  lastReading,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pots, nil
}

func (s *Storage) DeleteReadingsOlderThan(ctx context.Context, days int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := pgx.NamedArgs{
		"days": days,
	}

	tag, err := s.pool.Exec(ctx, `
		DELETE FROM readings
		WHERE timestamp < CURRENT_TIMESTAMP - make_interval(days => @days)
	`, args)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func collectReadings(rows pgx.Rows) ([]types.Reading, error) {
	var id int64
	var potID string
	var location *string
	var rawValue, moisturePercent float64
	var timestamp time.Time

	readings := make([]types.Reading, 0)

	_, err := pgx.ForEachRow(rows, []any{&id, &potID, &location, &rawValue, &moisturePercent, &timestamp}, func() error {
		readings = append(readings, types.Reading{
			ID:              id,
			PotID:           potID,
			Location:        location,
			RawValue:        rawValue,
			MoisturePercent: moisturePercent,
			Timestamp:       timestamp,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return readings, nil
}
