package get_booking_form

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/catalog/models"
	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
)

// OptionsResponse варианты выбора в форме записи
type OptionsResponse struct {
	Customers []models.CustomerResponse `json:"customers"`
	Services  []models.ServiceResponse  `json:"services"`
	Staff     []models.StaffResponse    `json:"staff"`
}

// FormResponse состояние формы записи
type FormResponse struct {
	Mode                  string                  `json:"mode"` // create | edit
	Draft                 *domain.AppointmentData `json:"draft"`
	ExistingAppointmentID *string                 `json:"existingAppointmentId,omitempty"`
	Options               OptionsResponse         `json:"options"`
}

// FromForm конвертирует форму use case в HTTP response
func FromForm(form *bookingForm.Form) *FormResponse {
	opts := OptionsResponse{
		Customers: make([]models.CustomerResponse, 0, len(form.Options.Customers)),
		Services:  make([]models.ServiceResponse, 0, len(form.Options.Services)),
		Staff:     make([]models.StaffResponse, 0, len(form.Options.Staff)),
	}
	for _, c := range form.Options.Customers {
		opts.Customers = append(opts.Customers, models.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone})
	}
	for _, s := range form.Options.Services {
		opts.Services = append(opts.Services, models.ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	for _, s := range form.Options.Staff {
		opts.Staff = append(opts.Staff, models.StaffResponse{ID: s.ID, Name: s.Name, BranchID: s.BranchID})
	}

	return &FormResponse{
		Mode:                  string(form.Mode),
		Draft:                 form.Draft,
		ExistingAppointmentID: form.ExistingAppointmentID,
		Options:               opts,
	}
}
