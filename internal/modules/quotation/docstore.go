// README: Redis-backed store for rendered documents, keyed per enquiry.
package quotation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Documents are working artifacts, not the system of record; they expire
// and can always be regenerated from the persisted inputs.
const docTTL = 24 * time.Hour

// DocStore keeps the latest rendered documents and structured data for
// each enquiry so downloads do not re-run the pipeline.
type DocStore struct {
	rdb *redis.Client
}

func NewDocStore(rdb *redis.Client) *DocStore {
	return &DocStore{rdb: rdb}
}

func docKey(enquiryID, kind string) string {
	return fmt.Sprintf("quotation:%s:%s", enquiryID, kind)
}

func (d *DocStore) PutPDF(ctx context.Context, enquiryID string, pdf []byte) error {
	return d.rdb.Set(ctx, docKey(enquiryID, "pdf"), pdf, docTTL).Err()
}

func (d *DocStore) GetPDF(ctx context.Context, enquiryID string) ([]byte, error) {
	b, err := d.rdb.Get(ctx, docKey(enquiryID, "pdf")).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return b, err
}

func (d *DocStore) PutDOCX(ctx context.Context, enquiryID string, docx []byte) error {
	return d.rdb.Set(ctx, docKey(enquiryID, "docx"), docx, docTTL).Err()
}

func (d *DocStore) GetDOCX(ctx context.Context, enquiryID string) ([]byte, error) {
	b, err := d.rdb.Get(ctx, docKey(enquiryID, "docx")).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return b, err
}

func (d *DocStore) PutStructured(ctx context.Context, enquiryID string, s *Structured) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return d.rdb.Set(ctx, docKey(enquiryID, "data"), b, docTTL).Err()
}

func (d *DocStore) GetStructured(ctx context.Context, enquiryID string) (*Structured, error) {
	b, err := d.rdb.Get(ctx, docKey(enquiryID, "data")).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Structured
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
