// README: Vendor reply and quotation stores backed by PostgreSQL.
package quotation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("quotation not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) CreateVendorReply(ctx context.Context, vr *VendorReply) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vendor_replies (id, enquiry_id, text, created_at)
		VALUES ($1, $2, $3, $4)`,
		vr.ID, vr.EnquiryID, vr.Text, vr.CreatedAt,
	)
	return err
}

// LatestVendorReply returns the newest vendor reply for an enquiry, or
// (nil, nil) when none has been submitted.
func (s *Store) LatestVendorReply(ctx context.Context, enquiryID string) (*VendorReply, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, enquiry_id, text, created_at
		FROM vendor_replies
		WHERE enquiry_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, enquiryID,
	)

	var vr VendorReply
	err := row.Scan(&vr.ID, &vr.EnquiryID, &vr.Text, &vr.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vr, nil
}

func (s *Store) CreateQuotation(ctx context.Context, r *Record) error {
	data, err := json.Marshal(r.StructuredData)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO quotations (id, enquiry_id, itinerary_used_id, vendor_reply_used_id, structured_data_json, pdf_storage_path, docx_storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.EnquiryID, nullable(r.ItineraryUsedID), nullable(r.VendorReplyUsedID), data, nullable(r.PDFStoragePath), nullable(r.DocxStoragePath), r.CreatedAt,
	)
	return err
}

// UpdateStoragePaths sets the rendered file locations on an existing
// quotation. Only the two path columns are writable after creation.
func (s *Store) UpdateStoragePaths(ctx context.Context, id, pdfPath, docxPath string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE quotations
		SET pdf_storage_path = COALESCE($2, pdf_storage_path),
		    docx_storage_path = COALESCE($3, docx_storage_path)
		WHERE id = $1`,
		id, nullable(pdfPath), nullable(docxPath),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LatestByEnquiry returns the newest quotation record for an enquiry.
func (s *Store) LatestByEnquiry(ctx context.Context, enquiryID string) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, enquiry_id, itinerary_used_id, vendor_reply_used_id, structured_data_json, pdf_storage_path, docx_storage_path, created_at
		FROM quotations
		WHERE enquiry_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, enquiryID,
	)

	var r Record
	var itineraryID, vendorReplyID, pdfPath, docxPath *string
	var data []byte
	err := row.Scan(&r.ID, &r.EnquiryID, &itineraryID, &vendorReplyID, &data, &pdfPath, &docxPath, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		var sd Structured
		if err := json.Unmarshal(data, &sd); err != nil {
			return nil, err
		}
		r.StructuredData = &sd
	}
	r.ItineraryUsedID = deref(itineraryID)
	r.VendorReplyUsedID = deref(vendorReplyID)
	r.PDFStoragePath = deref(pdfPath)
	r.DocxStoragePath = deref(docxPath)
	return &r, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
