package client

import (
	"context"
	"sync"

	"github.com/AhmetHKarabulut/btp-app/internal/domain/searchlog"
)

// MemorySearchLog, SQLite açılamadığında kullanılan süreç içi yedektir.
// Uygulama kapanınca günlük kaybolur; bu bilinçli bir son çare.
type MemorySearchLog struct {
	mu      sync.Mutex
	records []searchlog.Record
}

func NewMemorySearchLog() *MemorySearchLog {
	return &MemorySearchLog{}
}

func (m *MemorySearchLog) Append(_ context.Context, rec *searchlog.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// En yeni kayıt başta tutulur
	m.records = append([]searchlog.Record{*rec}, m.records...)
	return nil
}

func (m *MemorySearchLog) List(_ context.Context) ([]searchlog.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]searchlog.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemorySearchLog) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return searchlog.ErrNotFound
}
