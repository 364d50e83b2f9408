package searchlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service, arama günlüğünün iş kurallarını taşır: kimlik üretimi, tarih
// varsayılanı ve doğrulama burada, saklama Repository'de.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Servicer interface {
	Add(ctx context.Context, rec Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "searchlog_service")),
		now:  time.Now,
	}
}

// Add, yeni bir günlük kaydını doğrular ve saklar. Kimlik her zaman burada
// atanır; tarih verilmemişse şimdiki zaman kullanılır.
func (s *Service) Add(ctx context.Context, rec Record) (Record, error) {
	if rec.PersonID == "" {
		return Record{}, fmt.Errorf("%w: personId boş", ErrInvalidRecord)
	}

	rec.ID = uuid.NewString()
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.repo.Append(ctx, &rec); err != nil {
		s.log.Error("arama kaydı eklenemedi", "person_id", rec.PersonID, "error", err)
		return Record{}, fmt.Errorf("arama kaydı ekleme: %w", err)
	}

	s.log.Info("arama kaydı eklendi", "record_id", rec.ID, "person_id", rec.PersonID)
	return rec, nil
}

// List, günlüğü en yeni kayıt başta olacak şekilde döndürür.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("arama günlüğü okunamadı", "error", err)
		return nil, fmt.Errorf("arama günlüğü okuma: %w", err)
	}
	return records, nil
}

// Delete, kaydı kimliğiyle siler; olmayan kayıt için ErrNotFound döner.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id boş", ErrInvalidRecord)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.log.Error("arama kaydı silinemedi", "record_id", id, "error", err)
		return fmt.Errorf("arama kaydı silme: %w", err)
	}

	s.log.Info("arama kaydı silindi", "record_id", id)
	return nil
}
