package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AhmetHKarabulut/btp-app/internal/domain/searchlog"
)

// SQLiteSearchLog, arama günlüğünü yapılandırma dizinindeki yerel SQLite
// dosyasında tutar; searchlog.Repository arayüzünü uygular.
type SQLiteSearchLog struct {
	db *sql.DB
}

func NewSQLiteSearchLog(path string) (*SQLiteSearchLog, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("veritabanı açma: %w", err)
	}

	storage := &SQLiteSearchLog{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tablo hazırlama: %w", err)
	}

	return storage, nil
}

func (s *SQLiteSearchLog) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS search_records (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL,
			person_name TEXT NOT NULL DEFAULT '',
			searcher_name TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			date DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_search_records_date ON search_records(date);
		CREATE INDEX IF NOT EXISTS idx_search_records_person ON search_records(person_id);
	`)
	return err
}

func (s *SQLiteSearchLog) Append(ctx context.Context, rec *searchlog.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_records (id, person_id, person_name, searcher_name, notes, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PersonID, rec.PersonName, rec.SearcherName, rec.Notes,
		rec.Date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("kayıt ekleme: %w", err)
	}
	return nil
}

func (s *SQLiteSearchLog) List(ctx context.Context) ([]searchlog.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, person_id, person_name, searcher_name, notes, date
		FROM search_records
		ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("kayıt okuma: %w", err)
	}
	defer rows.Close()

	var records []searchlog.Record
	for rows.Next() {
		var rec searchlog.Record
		var date string
		if err := rows.Scan(&rec.ID, &rec.PersonID, &rec.PersonName, &rec.SearcherName, &rec.Notes, &date); err != nil {
			return nil, fmt.Errorf("satır çözme: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, date); err == nil {
			rec.Date = t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("satır gezme: %w", err)
	}

	return records, nil
}

func (s *SQLiteSearchLog) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM search_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("kayıt silme: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("silme sonucu okuma: %w", err)
	}
	if affected == 0 {
		return searchlog.ErrNotFound
	}
	return nil
}

func (s *SQLiteSearchLog) Close() error {
	return s.db.Close()
}
