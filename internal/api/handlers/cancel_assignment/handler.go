package cancel_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	cancelAssignment "github.com/m04kA/SMC-SpaBoard/internal/usecase/cancel_assignment"
)

const (
	msgMissingSession     = "chưa đăng nhập"
	msgInvalidBedID       = "mã giường không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgBedNotFound        = "không tìm thấy giường"
	msgNoAssignment       = "giường không có lịch hẹn để hủy"
	msgAssignmentMismatch = "lịch hẹn không khớp với giường"
	msgForbidden          = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase CancelAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/beds/{bedId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("POST /beds/{id}/cancel - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	var req CancelAssignmentRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /beds/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAssignment.Request{
		Actor:         user,
		BedID:         bedID,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAssignment.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, cancelAssignment.ErrNoAssignment):
			handlers.RespondConflict(w, msgNoAssignment)
		case errors.Is(err, cancelAssignment.ErrAssignmentMismatch):
			handlers.RespondConflict(w, msgAssignmentMismatch)
		case errors.Is(err, cancelAssignment.ErrAccessDenied):
			h.logger.Warn("POST /beds/{id}/cancel - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /beds/{id}/cancel - Failed to cancel assignment: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /beds/{id}/cancel - Assignment cancelled: bed_id=%d, appointment_id=%s", bedID, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
