package click_slot

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	clickSlot "github.com/m04kA/SMC-SpaBoard/internal/usecase/click_slot"
)

// SlotResponse ячейка сетки, по которой кликнули
type SlotResponse struct {
	Index    int    `json:"index"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Occupied bool   `json:"occupied"`
}

// ClickResponse результат клика: открыть форму записи или показать уведомление
type ClickResponse struct {
	Action string                  `json:"action"` // open_booking | notice
	Slot   SlotResponse            `json:"slot"`
	Draft  *domain.AppointmentData `json:"draft,omitempty"`
	Notice string                  `json:"notice,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *clickSlot.Response) *ClickResponse {
	return &ClickResponse{
		Action: string(resp.Action),
		Slot: SlotResponse{
			Index:    resp.Slot.Index,
			Start:    resp.Slot.Start.String(),
			End:      resp.Slot.End.String(),
			Occupied: resp.Slot.Occupied,
		},
		Draft:  resp.Draft,
		Notice: resp.Notice,
	}
}
