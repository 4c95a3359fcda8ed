// README: Itinerary store backed by PostgreSQL.
package itinerary

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

func (s *Store) Create(ctx context.Context, it *Itinerary) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO itineraries (id, enquiry_id, text, created_at)
		VALUES ($1, $2, $3, $4)`,
		it.ID, it.EnquiryID, it.Text, it.CreatedAt,
	)
	return err
}

// LatestByEnquiry returns the newest itinerary for an enquiry, or (nil, nil)
// when none has been generated yet.
func (s *Store) LatestByEnquiry(ctx context.Context, enquiryID string) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, enquiry_id, text, created_at
		FROM itineraries
		WHERE enquiry_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, enquiryID,
	)

	var it Itinerary
	err := row.Scan(&it.ID, &it.EnquiryID, &it.Text, &it.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
