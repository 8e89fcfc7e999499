package auth_logout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity"
)

const (
	msgMissingSession = "chưa đăng nhập"
)

type Handler struct {
	service IdentityService
	logger  Logger
}

func NewHandler(service IdentityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			h.logger.Warn("POST /auth/logout - No session: %v", err)
			handlers.RespondUnauthorized(w, msgMissingSession)
			return
		}
		h.logger.Error("POST /auth/logout - Failed to sign out: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Signed out")
	w.WriteHeader(http.StatusNoContent)
}
