package auth_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity/models"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidInput       = "vui lòng nhập tên đăng nhập và mật khẩu"
	msgInvalidCredentials = "tên đăng nhập hoặc mật khẩu không đúng"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, identity.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to sign in: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Signed in: user_id=%d, role=%s", resp.User.ID, resp.User.Role)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
