package save_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
	saveAssignment "github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
)

const (
	msgMissingSession     = "chưa đăng nhập"
	msgInvalidBedID       = "mã giường không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgValidation         = "vui lòng điền đầy đủ thông tin bắt buộc"
	msgBedNotFound        = "không tìm thấy giường"
	msgBedNotAvailable    = "giường hiện không trống"
	msgAssignmentMismatch = "lịch hẹn không khớp với giường"
	msgServiceNotFound    = "không tìm thấy dịch vụ"
	msgForbidden          = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase BookingFormUseCase
	logger  Logger
}

func NewHandler(useCase BookingFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/beds/{bedId}/assignment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("POST /beds/{id}/assignment - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	var req SaveAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /beds/{id}/assignment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Submit(r.Context(), &bookingForm.SubmitRequest{
		Actor:                 user,
		BedID:                 bedID,
		Draft:                 req.Draft,
		ExistingAppointmentID: req.ExistingAppointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingForm.ErrValidation), errors.Is(err, saveAssignment.ErrValidation):
			h.logger.Warn("POST /beds/{id}/assignment - Validation failed: bed_id=%d, error=%v", bedID, err)
			handlers.RespondValidationError(w, msgValidation, err)
		case errors.Is(err, saveAssignment.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, saveAssignment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, saveAssignment.ErrInvalidTransition):
			h.logger.Warn("POST /beds/{id}/assignment - Bed not available: bed_id=%d", bedID)
			handlers.RespondConflict(w, msgBedNotAvailable)
		case errors.Is(err, saveAssignment.ErrAssignmentMismatch):
			h.logger.Warn("POST /beds/{id}/assignment - Assignment mismatch: bed_id=%d", bedID)
			handlers.RespondConflict(w, msgAssignmentMismatch)
		case errors.Is(err, saveAssignment.ErrAccessDenied):
			h.logger.Warn("POST /beds/{id}/assignment - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /beds/{id}/assignment - Failed to save assignment: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Mode == saveAssignment.ModeCreate {
		status = http.StatusCreated
	}
	h.logger.Info("POST /beds/{id}/assignment - Saved: bed_id=%d, mode=%s, appointment_id=%s",
		bedID, result.Mode, result.AppointmentID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
