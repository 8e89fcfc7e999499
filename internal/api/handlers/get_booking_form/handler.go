package get_booking_form

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
)

const (
	msgMissingSession     = "chưa đăng nhập"
	msgInvalidBedID       = "mã giường không hợp lệ"
	msgInvalidSlot        = "khung giờ không hợp lệ"
	msgBedNotFound        = "không tìm thấy giường"
	msgBedNotAvailable    = "giường hiện không trống"
	msgAssignmentMismatch = "lịch hẹn không khớp với giường"
	msgSlotOutOfRange     = "khung giờ nằm ngoài lịch trong ngày"
	msgServiceNotFound    = "không tìm thấy dịch vụ"
	msgValidation         = "thông tin lịch hẹn không hợp lệ"
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

// Handle GET /api/v1/beds/{bedId}/booking-form?slot=&appointmentId=&service=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("GET /beds/{id}/booking-form - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	req := &bookingForm.OpenRequest{
		Actor:         user,
		BedID:         bedID,
		AppointmentID: handlers.QueryString(r, "appointmentId"),
	}
	if service := handlers.QueryString(r, "service"); service != nil {
		req.Service = *service
	}
	if raw := handlers.QueryString(r, "slot"); raw != nil {
		slot, err := strconv.Atoi(*raw)
		if err != nil {
			h.logger.Warn("GET /beds/{id}/booking-form - Invalid slot %q", *raw)
			handlers.RespondBadRequest(w, msgInvalidSlot)
			return
		}
		req.SlotIndex = &slot
	}

	form, err := h.useCase.Open(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingForm.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, bookingForm.ErrBedNotAvailable):
			handlers.RespondConflict(w, msgBedNotAvailable)
		case errors.Is(err, bookingForm.ErrAssignmentMismatch):
			handlers.RespondConflict(w, msgAssignmentMismatch)
		case errors.Is(err, bookingForm.ErrSlotOutOfRange):
			handlers.RespondBadRequest(w, msgSlotOutOfRange)
		case errors.Is(err, bookingForm.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, bookingForm.ErrValidation):
			handlers.RespondValidationError(w, msgValidation, err)
		case errors.Is(err, bookingForm.ErrAccessDenied):
			h.logger.Warn("GET /beds/{id}/booking-form - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /beds/{id}/booking-form - Failed to open form: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromForm(form))
}
