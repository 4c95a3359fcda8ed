// README: Enquiry/client store backed by PostgreSQL.
package enquiry

import (
	"context"
	"database/sql"
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

func (s *Store) Create(ctx context.Context, e *Enquiry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO enquiries (id, destination, num_days, traveler_count, trip_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Destination, e.NumDays, e.TravelerCount, string(e.TripType), e.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Enquiry, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, destination, num_days, traveler_count, trip_type, created_at
		FROM enquiries
		WHERE id = $1`, id,
	)

	var e Enquiry
	err := row.Scan(&e.ID, &e.Destination, &e.NumDays, &e.TravelerCount, &e.TripType, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) List(ctx context.Context) ([]Enquiry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination, num_days, traveler_count, trip_type, created_at
		FROM enquiries
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Enquiry
	for rows.Next() {
		var e Enquiry
		if err := rows.Scan(&e.ID, &e.Destination, &e.NumDays, &e.TravelerCount, &e.TripType, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) CreateClient(ctx context.Context, c *Client) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO clients (id, enquiry_id, name, mobile, city, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.EnquiryID, c.Name, c.Mobile, c.City, c.Email, c.CreatedAt,
	)
	return err
}

// ClientByEnquiry returns the client attached to an enquiry, or (nil, nil)
// when none exists: a missing client is a normal state, not an error.
func (s *Store) ClientByEnquiry(ctx context.Context, enquiryID string) (*Client, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, enquiry_id, name, mobile, city, email, created_at
		FROM clients
		WHERE enquiry_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, enquiryID,
	)

	var c Client
	var email sql.NullString
	err := row.Scan(&c.ID, &c.EnquiryID, &c.Name, &c.Mobile, &c.City, &email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	return &c, nil
}
