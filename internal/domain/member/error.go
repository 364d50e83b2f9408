package member

import "errors"

var (
	// ErrPageOutOfRange - istenen sayfa [1, MaxPage] aralığının dışında
	ErrPageOutOfRange = errors.New("sayfa aralık dışında")
)
