package get_bed_timeline

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	getBedTimeline "github.com/m04kA/SMC-SpaBoard/internal/usecase/get_bed_timeline"
)

const (
	msgMissingSession = "chưa đăng nhập"
	msgInvalidBedID   = "mã giường không hợp lệ"
	msgInvalidDate    = "ngày không hợp lệ, định dạng YYYY-MM-DD"
	msgBedNotFound    = "không tìm thấy giường"
	msgForbidden      = "bạn không có quyền truy cập chi nhánh này"
)

type Handler struct {
	useCase GetBedTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetBedTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/beds/{bedId}/timeline?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bedID, err := handlers.PathInt64(r, "bedId")
	if err != nil {
		h.logger.Warn("GET /beds/{id}/timeline - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	req := &getBedTimeline.Request{Actor: user, BedID: bedID}
	if raw := handlers.QueryString(r, "date"); raw != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /beds/{id}/timeline - Invalid date %q: %v", *raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBedTimeline.ErrBedNotFound):
			handlers.RespondNotFound(w, msgBedNotFound)
		case errors.Is(err, getBedTimeline.ErrAccessDenied):
			h.logger.Warn("GET /beds/{id}/timeline - Access denied: bed_id=%d, user_id=%d", bedID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, getBedTimeline.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBedID)
		default:
			h.logger.Error("GET /beds/{id}/timeline - Failed to build timeline: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
