package booking_form_select

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgNothingSelected    = "chưa chọn khách hàng hoặc dịch vụ"
	msgServiceNotFound    = "không tìm thấy dịch vụ"
	msgCustomerNotFound   = "không tìm thấy khách hàng"
	msgValidation         = "thông tin lịch hẹn không hợp lệ"
)

type Handler struct {
	useCase BookingFormUseCase
	logger  Logger
}

func NewHandler(useCase BookingFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-form/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-form/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.CustomerID == nil && req.Service == nil {
		handlers.RespondBadRequest(w, msgNothingSelected)
		return
	}

	draft := &req.Draft
	var err error
	if req.CustomerID != nil {
		draft, err = h.useCase.SelectCustomer(r.Context(), *draft, *req.CustomerID)
	}
	if err == nil && req.Service != nil {
		draft, err = h.useCase.SelectService(r.Context(), *draft, *req.Service)
	}
	if err != nil {
		switch {
		case errors.Is(err, bookingForm.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, bookingForm.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)
		case errors.Is(err, bookingForm.ErrValidation):
			handlers.RespondValidationError(w, msgValidation, err)
		default:
			h.logger.Error("POST /booking-form/select - Failed to update draft: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectResponse{Draft: draft})
}
