package click_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	clickSlot "github.com/m04kA/SMC-SpaBoard/internal/usecase/click_slot"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidBedID   = "mã giường không hợp lệ"
	msgInvalidSlot    = "khung giờ không hợp lệ"
	msgBedNotFound    = "không tìm thấy giường"
	msgSlotOutOfRange = "khung giờ nằm ngoài lịch trong ngày"
	msgForbidden      = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase ClickSlotUseCase
	logger  Logger
}

func NewHandler(useCase ClickSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/beds/{bedId}/slots/{slot}/click
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("POST /beds/{id}/slots/{slot}/click - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	slotIndex, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil {
		h.logger.Warn("POST /beds/{id}/slots/{slot}/click - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &clickSlot.Request{Actor: user, BedID: bedID, SlotIndex: slotIndex})
	if err != nil {
		switch {
		case errors.Is(err, clickSlot.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, clickSlot.ErrSlotOutOfRange):
			handlers.RespondBadRequest(w, msgSlotOutOfRange)
		case errors.Is(err, clickSlot.ErrAccessDenied):
			h.logger.Warn("POST /beds/{id}/slots/{slot}/click - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /beds/{id}/slots/{slot}/click - Failed: bed_id=%d, slot=%d, error=%v", bedID, slotIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /beds/{id}/slots/{slot}/click - bed_id=%d, slot=%d, action=%s", bedID, slotIndex, result.Action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
