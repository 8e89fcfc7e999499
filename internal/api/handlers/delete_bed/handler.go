package delete_bed

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidBedID   = "mã giường không hợp lệ"
	msgBedNotFound    = "không tìm thấy giường"
	msgForbidden      = "bạn không có quyền truy cập chi nhánh này"
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

// Handle DELETE /api/v1/beds/{bedId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("DELETE /beds/{id} - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	if err := h.service.Delete(r.Context(), user, bedID); err != nil {
		switch {
		case errors.Is(err, beds.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, beds.ErrAccessDenied):
			h.logger.Warn("DELETE /beds/{id} - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("DELETE /beds/{id} - Failed to delete bed: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /beds/{id} - Bed deleted: bed_id=%d, user_id=%d", bedID, user.ID)
	w.WriteHeader(http.StatusNoContent)
}
