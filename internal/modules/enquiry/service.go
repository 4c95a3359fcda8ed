// README: Enquiry service; validation and CRUD orchestration.
package enquiry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("enquiry not found")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Destination   string
	NumDays       int
	TravelerCount int
	TripType      TripType
}

func (cmd CreateCommand) validate() error {
	if strings.TrimSpace(cmd.Destination) == "" {
		return ErrBadRequest
	}
	if cmd.NumDays <= 0 || cmd.TravelerCount <= 0 {
		return ErrBadRequest
	}
	if !ValidTripType(cmd.TripType) {
		return ErrBadRequest
	}
	return nil
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Enquiry, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	e := &Enquiry{
		ID:            uuid.NewString(),
		Destination:   strings.TrimSpace(cmd.Destination),
		NumDays:       cmd.NumDays,
		TravelerCount: cmd.TravelerCount,
		TripType:      cmd.TripType,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Enquiry, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Enquiry, error) {
	return s.store.List(ctx)
}

type AttachClientCommand struct {
	EnquiryID string
	Name      string
	Mobile    string
	City      string
	Email     string
}

func (s *Service) AttachClient(ctx context.Context, cmd AttachClientCommand) (*Client, error) {
	if cmd.EnquiryID == "" || strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrBadRequest
	}
	if _, err := s.store.Get(ctx, cmd.EnquiryID); err != nil {
		return nil, err
	}
	c := &Client{
		ID:        uuid.NewString(),
		EnquiryID: cmd.EnquiryID,
		Name:      strings.TrimSpace(cmd.Name),
		Mobile:    strings.TrimSpace(cmd.Mobile),
		City:      strings.TrimSpace(cmd.City),
		CreatedAt: time.Now().UTC(),
	}
	if email := strings.TrimSpace(cmd.Email); email != "" {
		c.Email = &email
	}
	if err := s.store.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ClientByEnquiry(ctx context.Context, enquiryID string) (*Client, error) {
	if enquiryID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ClientByEnquiry(ctx, enquiryID)
}
