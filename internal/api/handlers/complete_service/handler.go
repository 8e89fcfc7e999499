package complete_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	completeService "github.com/m04kA/SMC-SpaBoard/internal/usecase/complete_service"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidBedID   = "mã giường không hợp lệ"
	msgBedNotFound    = "không tìm thấy giường"
	msgForbidden      = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase CompleteServiceUseCase
	logger  Logger
}

func NewHandler(useCase CompleteServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/beds/{bedId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("POST /beds/{id}/complete - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeService.Request{Actor: user, BedID: bedID})
	if err != nil {
		switch {
		case errors.Is(err, completeService.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, completeService.ErrAccessDenied):
			h.logger.Warn("POST /beds/{id}/complete - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /beds/{id}/complete - Failed to complete service: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /beds/{id}/complete - Service completed: bed_id=%d, previous=%s", bedID, result.PreviousStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
