package export_board

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	exportBoard "github.com/m04kA/SMC-SpaBoard/internal/usecase/export_board"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidBranch  = "mã chi nhánh không hợp lệ"
	msgForbidden      = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase ExportBoardUseCase
	logger  Logger
}

func NewHandler(useCase ExportBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/board/export?branchId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /board/export - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranch)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportBoard.Request{Actor: user, BranchID: branchID})
	if err != nil {
		if errors.Is(err, exportBoard.ErrAccessDenied) {
			h.logger.Warn("GET /board/export - Access denied: user_id=%d", user.ID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /board/export - Failed to export board: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /board/export - Exported %d beds for user_id=%d", result.BedCount, user.ID)
	w.Header().Set("Content-Type", exportBoard.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
