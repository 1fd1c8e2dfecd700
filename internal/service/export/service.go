package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"clubraise/internal/repository"
)

// Service renders club data as CSV for download.
type Service interface {
	ExportSupportersCSV(ctx context.Context, clubID uuid.UUID) ([]byte, error)
	ExportImpactCSV(ctx context.Context, clubID uuid.UUID) ([]byte, error)
}

type service struct {
	supporterRepo repository.SupporterRepository
	impactRepo    repository.ImpactRepository
}

func NewService(supporterRepo repository.SupporterRepository, impactRepo repository.ImpactRepository) Service {
	return &service{
		supporterRepo: supporterRepo,
		impactRepo:    impactRepo,
	}
}

func (s *service) ExportSupportersCSV(ctx context.Context, clubID uuid.UUID) ([]byte, error) {
	supporters, err := s.supporterRepo.ListAllByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "type", "full_name", "email", "phone", "organisation", "total_donated", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range supporters {
		sp := &supporters[i]
		record := []string{
			sp.ID.String(),
			string(sp.Type),
			sp.FullName,
			deref(sp.Email),
			deref(sp.Phone),
			deref(sp.Organisation),
			strconv.FormatFloat(sp.TotalDonated, 'f', 2, 64),
			sp.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) ExportImpactCSV(ctx context.Context, clubID uuid.UUID) ([]byte, error) {
	updates, err := s.impactRepo.ListAllByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "title", "status", "is_final", "impact_date", "amount_spent", "currency", "media_items", "metrics", "testimonials", "published_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range updates {
		u := &updates[i]
		publishedAt := ""
		if u.PublishedAt != nil {
			publishedAt = u.PublishedAt.Format(time.RFC3339)
		}
		record := []string{
			u.ID.String(),
			u.Title,
			string(u.Status),
			strconv.FormatBool(u.IsFinal),
			u.ImpactDate.Format("2006-01-02"),
			strconv.FormatFloat(u.SpentAmount(), 'f', 2, 64),
			deref(u.Currency),
			fmt.Sprint(len(u.Proof.Media)),
			fmt.Sprint(len(u.Metrics)),
			fmt.Sprint(len(u.Proof.Testimonials)),
			publishedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
