package client

import (
	"context"
	"net/url"
	"strconv"
)

// ReleaseNote, sunucunun duyurduğu sürüm notudur.
type ReleaseNote struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

// NewestReleaseNotes, en yeni sürüm notlarını getirir.
func (h *httpClient) NewestReleaseNotes(ctx context.Context, count int) ([]ReleaseNote, error) {
	if count < 1 {
		count = 1
	}
	query := url.Values{}
	query.Set("count", strconv.Itoa(count))

	var notes []ReleaseNote
	if err := h.get(ctx, "/api/ReleaseNotes/GetNewestReleaseNotes", query, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
