package auth_session

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity/models"
)

const (
	msgMissingSession = "chưa đăng nhập"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/session - Missing user")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainUser(user))
}
