package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	listAppointments "github.com/m04kA/SMC-SpaBoard/internal/usecase/list_appointments"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidFilter  = "bộ lọc không hợp lệ"
)

type Handler struct {
	useCase ListAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ListAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?bedId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.QueryInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAppointments.Request{
		Actor:  user,
		BedID:  bedID,
		Status: handlers.QueryString(r, "status"),
	})
	if err != nil {
		if errors.Is(err, listAppointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
