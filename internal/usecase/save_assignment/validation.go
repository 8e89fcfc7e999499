package save_assignment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/schedule"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

// validateDraft проверяет обязательные поля черновика
func validateDraft(draft *domain.AppointmentData) error {
	if err := validator.Struct(draft); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// resolveEndTime проверяет услугу по справочнику и выводит время окончания из ее длительности, если оно не задано.
// Нулевое время окончания (00:00) означает "не задано": окончание всегда позже начала.
func resolveEndTime(draft *domain.AppointmentData, catalog *domain.Catalog) error {
	service, ok := catalog.ServiceByName(draft.Service)
	if !ok {
		return fmt.Errorf("%w: %q", ErrServiceNotFound, draft.Service)
	}

	if draft.EndTime == 0 {
		end, err := schedule.DeriveEndTime(draft.StartTime, service.DurationMinutes)
		if err != nil {
			return fieldError("endTime", err)
		}
		draft.EndTime = end
	}

	if !draft.StartTime.IsBefore(draft.EndTime) {
		return fieldError("endTime", errors.New("end time must be after start time"))
	}
	return nil
}

func fieldError(field string, cause error) error {
	return fmt.Errorf("%w: %w", ErrValidation, &validator.FieldsError{
		Fields: map[string]string{field: cause.Error()},
	})
}
