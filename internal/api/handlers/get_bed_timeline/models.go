package get_bed_timeline

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	getBedTimeline "github.com/m04kA/SMC-SpaBoard/internal/usecase/get_bed_timeline"
)

// SlotResponse ячейка сетки
type SlotResponse struct {
	Index    int    `json:"index"`
	Start    string `json:"start"` // "09:00"
	End      string `json:"end"`   // "10:00"
	Occupied bool   `json:"occupied"`
	First    bool   `json:"first"`
}

// RemainingResponse оставшееся время назначения
type RemainingResponse struct {
	State   string `json:"state"` // remaining | overdue
	Minutes int    `json:"minutes"`
}

// AssignmentBlockResponse блок назначения на сетке
type AssignmentBlockResponse struct {
	Assignment   *models.AssignmentResponse `json:"assignment"`
	FirstSlot    *int                       `json:"firstSlot"`
	HeightPixels int                        `json:"heightPixels"`
	Remaining    *RemainingResponse         `json:"remaining,omitempty"` // nil, если день не сегодня
}

// TimelineResponse сетка кровати на день
type TimelineResponse struct {
	Bed        *models.BedResponse      `json:"bed"`
	Date       string                   `json:"date"` // "2026-10-17"
	Now        string                   `json:"now"`  // "09:45"
	Slots      []SlotResponse           `json:"slots"`
	Assignment *AssignmentBlockResponse `json:"assignment,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBedTimeline.Response) *TimelineResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Index:    s.Index,
			Start:    s.Start.String(),
			End:      s.End.String(),
			Occupied: s.Occupied,
			First:    s.First,
		})
	}

	result := &TimelineResponse{
		Bed:   models.FromDomainBed(resp.Bed),
		Date:  resp.Date.Format(domain.DateFormat),
		Now:   resp.Now.String(),
		Slots: slots,
	}
	if block := resp.Assignment; block != nil {
		result.Assignment = &AssignmentBlockResponse{
			Assignment:   models.FromDomainAssignment(block.Assignment),
			FirstSlot:    block.FirstSlot,
			HeightPixels: block.HeightPixels,
		}
		if block.Remaining != nil {
			result.Assignment.Remaining = &RemainingResponse{
				State:   string(block.Remaining.State),
				Minutes: block.Remaining.Minutes,
			}
		}
	}
	return result
}
