package set_bed_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

const (
	msgMissingSession     = "chưa đăng nhập"
	msgInvalidBedID       = "mã giường không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidStatus      = "trạng thái không hợp lệ"
	msgBedNotFound        = "không tìm thấy giường"
	msgInvalidTransition  = "không thể chuyển giường sang trạng thái này"
	msgForbidden          = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	service BedService
	logger  Logger
}

func NewHandler(service BedService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/beds/{bedId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("PATCH /beds/{id}/status - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	var req models.SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /beds/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bed, err := h.service.SetStatus(r.Context(), user, bedID, &req)
	if err != nil {
		switch {
		case errors.Is(err, beds.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidStatus, err)
		case errors.Is(err, beds.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, beds.ErrInvalidTransition):
			h.logger.Warn("PATCH /beds/{id}/status - Invalid transition: bed_id=%d, error=%v", bedID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, beds.ErrAccessDenied):
			h.logger.Warn("PATCH /beds/{id}/status - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PATCH /beds/{id}/status - Failed to set status: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /beds/{id}/status - Status changed: bed_id=%d, status=%s, user_id=%d", bedID, bed.Status, user.ID)
	handlers.RespondJSON(w, http.StatusOK, bed)
}
