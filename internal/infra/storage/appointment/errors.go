package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись о записи на процедуру не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAppointmentExists возвращается при повторном создании записи с тем же ID
	ErrAppointmentExists = errors.New("appointment.repository: appointment already exists")
)
