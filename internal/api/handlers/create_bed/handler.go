package create_bed

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
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgValidation         = "thông tin giường không hợp lệ"
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

// Handle POST /api/v1/beds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.BedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /beds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bed, err := h.service.Create(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, beds.ErrInvalidInput):
			handlers.RespondValidationError(w, msgValidation, err)
		case errors.Is(err, beds.ErrAccessDenied):
			h.logger.Warn("POST /beds - Access denied: branch_id=%d, user_id=%d", req.BranchID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /beds - Failed to create bed: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /beds - Bed created: bed_id=%d, user_id=%d", bed.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, bed)
}
