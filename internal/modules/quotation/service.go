// README: Quotation service; cache-guarded generation, persistence, uploads, DOCX export.
package quotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripquote/internal/docx"
	"tripquote/internal/storage"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNoDocument      = errors.New("no rendered document available for this enquiry")
	ErrDocxUnavailable = errors.New("DOCX conversion is not available")
)

type Service struct {
	pipeline *Pipeline
	cache    *ResultCache
	store    *Store
	docs     *DocStore
	uploads  *storage.Client
	convert  docx.Converter
	log      *zap.Logger
}

// NewService wires the generation service. uploads and convert are
// optional; nil disables object storage uploads and DOCX export.
func NewService(pipeline *Pipeline, store *Store, docs *DocStore, uploads *storage.Client, convert docx.Converter, log *zap.Logger) *Service {
	return &Service{
		pipeline: pipeline,
		cache:    NewResultCache(),
		store:    store,
		docs:     docs,
		uploads:  uploads,
		convert:  convert,
		log:      log,
	}
}

// SubmitVendorReply stores a vendor's response text for an enquiry.
func (s *Service) SubmitVendorReply(ctx context.Context, enquiryID, text string) (*VendorReply, error) {
	if enquiryID == "" || strings.TrimSpace(text) == "" {
		return nil, ErrBadRequest
	}
	vr := &VendorReply{
		ID:        uuid.NewString(),
		EnquiryID: enquiryID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateVendorReply(ctx, vr); err != nil {
		return nil, err
	}
	return vr, nil
}

func (s *Service) LatestVendorReply(ctx context.Context, enquiryID string) (*VendorReply, error) {
	return s.store.LatestVendorReply(ctx, enquiryID)
}

// Generate runs the pipeline for the given input, short-circuiting on the
// cache when every input is unchanged since the last successful run. The
// returned Result always has a non-empty Document; check Failure to see
// whether it is a quotation or an error page.
func (s *Service) Generate(ctx context.Context, in Input) (*Result, error) {
	if in.Enquiry == nil {
		return nil, ErrBadRequest
	}
	key := CacheKey(in.Enquiry.ID, in.ClientName, in.VendorReply, in.ItineraryText, in.Provider, in.Options)
	if cached := s.cache.Get(key); cached != nil {
		if s.log != nil {
			s.log.Debug("quotation served from cache", zap.String("enquiry_id", in.Enquiry.ID))
		}
		return cached, nil
	}

	res := s.pipeline.Run(ctx, in)
	res.Key = key
	if res.Failure != nil {
		if s.log != nil {
			s.log.Warn("quotation generation failed",
				zap.String("enquiry_id", in.Enquiry.ID),
				zap.String("type", string(res.Failure.Type)),
				zap.String("message", res.Failure.Message),
			)
		}
		return res, nil
	}

	s.cache.Put(key, res)
	if err := s.persist(ctx, in, res); err != nil {
		// The document was generated; persistence trouble is reported
		// but does not void the result.
		if s.log != nil {
			s.log.Error("quotation persistence failed", zap.String("enquiry_id", in.Enquiry.ID), zap.Error(err))
		}
	}
	return res, nil
}

func (s *Service) persist(ctx context.Context, in Input, res *Result) error {
	enquiryID := in.Enquiry.ID
	if s.docs != nil {
		if err := s.docs.PutPDF(ctx, enquiryID, res.Document); err != nil {
			return err
		}
		if err := s.docs.PutStructured(ctx, enquiryID, res.Structured); err != nil {
			return err
		}
	}

	pdfPath := ""
	if s.uploads != nil {
		pdfPath = uploadPath(enquiryID, "PDF", "pdf")
		if err := s.uploads.Upload(ctx, pdfPath, res.Document, "application/pdf"); err != nil {
			return err
		}
	}

	if s.store != nil {
		rec := &Record{
			ID:                uuid.NewString(),
			EnquiryID:         enquiryID,
			ItineraryUsedID:   res.ItineraryUsedID,
			VendorReplyUsedID: res.VendorReplyID,
			StructuredData:    res.Structured,
			PDFStoragePath:    pdfPath,
			CreatedAt:         time.Now().UTC(),
		}
		if err := s.store.CreateQuotation(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// GetPDF returns the latest rendered PDF for an enquiry, or ErrNoDocument.
func (s *Service) GetPDF(ctx context.Context, enquiryID string) ([]byte, error) {
	if s.docs == nil {
		return nil, ErrNoDocument
	}
	pdf, err := s.docs.GetPDF(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, ErrNoDocument
	}
	return pdf, nil
}

// ExportDOCX converts the latest rendered PDF for an enquiry to DOCX,
// storing and uploading the result alongside the PDF.
func (s *Service) ExportDOCX(ctx context.Context, enquiryID string) ([]byte, error) {
	if s.convert == nil {
		return nil, ErrDocxUnavailable
	}
	pdf, err := s.GetPDF(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	out := s.convert.Convert(pdf)
	if out == nil {
		return nil, ErrDocxUnavailable
	}

	if s.docs != nil {
		if err := s.docs.PutDOCX(ctx, enquiryID, out); err != nil && s.log != nil {
			s.log.Error("docx store failed", zap.String("enquiry_id", enquiryID), zap.Error(err))
		}
	}
	if s.uploads != nil && s.store != nil {
		docxPath := uploadPath(enquiryID, "DOCX", "docx")
		if err := s.uploads.Upload(ctx, docxPath, out, "application/vnd.openxmlformats-officedocument.wordprocessingml.document"); err != nil {
			if s.log != nil {
				s.log.Error("docx upload failed", zap.String("enquiry_id", enquiryID), zap.Error(err))
			}
			return out, nil
		}
		if rec, err := s.store.LatestByEnquiry(ctx, enquiryID); err == nil {
			if err := s.store.UpdateStoragePaths(ctx, rec.ID, "", docxPath); err != nil && s.log != nil {
				s.log.Error("docx path update failed", zap.String("quotation_id", rec.ID), zap.Error(err))
			}
		}
	}
	return out, nil
}

// LatestRecord returns the newest persisted quotation for an enquiry.
func (s *Service) LatestRecord(ctx context.Context, enquiryID string) (*Record, error) {
	if s.store == nil {
		return nil, ErrNotFound
	}
	return s.store.LatestByEnquiry(ctx, enquiryID)
}

func uploadPath(enquiryID, label, ext string) string {
	ts := time.Now().UTC().Format("20060102_150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s/quotation_%s_%s_%s.%s", enquiryID, label, ts, suffix, ext)
}
