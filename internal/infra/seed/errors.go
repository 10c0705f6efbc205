package seed

import "errors"

var (
	// ErrLoadDataset возвращается при ошибке чтения встроенного датасета
	ErrLoadDataset = errors.New("seed: failed to load bundled dataset")
)
