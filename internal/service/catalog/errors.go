package catalog

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда справочник не удалось загрузить
	ErrCatalogUnavailable = errors.New("catalog: catalog unavailable")
)
