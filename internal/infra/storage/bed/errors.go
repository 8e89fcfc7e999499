package bed

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("bed.repository: bed not found")

	// ErrInvalidBed возвращается при попытке сохранить nil или некорректную кровать
	ErrInvalidBed = errors.New("bed.repository: invalid bed")
)
