// README: Travel record store backed by PostgreSQL.
package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one record and returns the store-assigned id. created_at is
// set by the database so insertion order and timestamp order agree.
func (s *Store) Insert(ctx context.Context, rec *TravelRecord) (int64, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO travel_records (
			origin, destination, depart_time, trip_length_days, preferences, response
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		rec.Origin,
		rec.Destination,
		rec.DepartTime,
		rec.TripLengthDays,
		rec.Preferences,
		rec.Response,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// ListRecent returns up to limit record summaries, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]RecordSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, origin, destination, depart_time, trip_length_days, created_at
		FROM travel_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordSummary
	for rows.Next() {
		var r RecordSummary
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.DepartTime, &r.TripLengthDays, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*TravelRecord, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, origin, destination, depart_time, trip_length_days, preferences, response, created_at
		FROM travel_records
		WHERE id = $1`, id,
	)

	var rec TravelRecord
	err := row.Scan(
		&rec.ID, &rec.Origin, &rec.Destination, &rec.DepartTime,
		&rec.TripLengthDays, &rec.Preferences, &rec.Response, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM travel_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
