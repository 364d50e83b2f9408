package searchlog

import "errors"

var (
	// ErrNotFound - silinmek istenen kayıt günlükte yok
	ErrNotFound = errors.New("arama kaydı bulunamadı")
	// ErrInvalidRecord - zorunlu alanları eksik kayıt
	ErrInvalidRecord = errors.New("geçersiz arama kaydı")
)
