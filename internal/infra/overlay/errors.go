package overlay

import "errors"

var (
	// ErrNotFound возвращается, когда записи нет в overlay хранилище
	ErrNotFound = errors.New("overlay: record not found")
)
