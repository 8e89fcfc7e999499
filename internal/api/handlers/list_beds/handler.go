package list_beds

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidFilter  = "bộ lọc không hợp lệ"
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

// Handle GET /api/v1/beds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	req, err := ParseFilter(r)
	if err != nil {
		h.logger.Warn("GET /beds - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	resp, err := h.service.List(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, beds.ErrInvalidInput) {
			h.logger.Warn("GET /beds - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /beds - Failed to list beds: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
