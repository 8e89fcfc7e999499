package models

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Request модели

// BedRequest запрос на создание или изменение кровати
type BedRequest struct {
	Name      string   `json:"name" validate:"notblank,max=100"`
	Room      string   `json:"room" validate:"max=100"`
	BranchID  int64    `json:"branchId" validate:"gt=0"`
	Type      string   `json:"type" validate:"omitempty,bed_type"`
	Equipment []string `json:"equipment" validate:"max=30,dive,notblank,max=100"`
}

// ToDomainSpec конвертирует запрос в domain.BedSpec. Пустой тип означает massage
func (r *BedRequest) ToDomainSpec() domain.BedSpec {
	bedType := domain.BedType(r.Type)
	if bedType == "" {
		bedType = domain.BedTypeMassage
	}
	equipment := make([]string, 0, len(r.Equipment))
	equipment = append(equipment, r.Equipment...)

	return domain.BedSpec{
		Name:      r.Name,
		Room:      r.Room,
		BranchID:  r.BranchID,
		Type:      bedType,
		Equipment: equipment,
	}
}

// SetStatusRequest запрос на смену статуса кровати
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListBedsRequest фильтр списка кроватей
type ListBedsRequest struct {
	BranchID *int64
	Status   *string
	Type     *string
}

// Response модели

// AssignmentResponse текущее назначение на кровати
type AssignmentResponse struct {
	AppointmentID    string `json:"appointmentId"`
	CustomerID       *int64 `json:"customerId,omitempty"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone,omitempty"`
	Service          string `json:"service"`
	Staff            string `json:"staff,omitempty"`
	StartTime        string `json:"startTime"`        // "09:00"
	EstimatedEndTime string `json:"estimatedEndTime"` // "10:30"
	DurationMinutes  int    `json:"durationMinutes"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
}

// ActionResponse действие над кроватью и маршрут API, который его выполняет.
// Path задан относительно префикса API (/api/v1).
type ActionResponse struct {
	Name   string            `json:"name"`
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Body   map[string]string `json:"body,omitempty"`
}

// BedResponse кровать на доске
type BedResponse struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Room             string              `json:"room"`
	BranchID         int64               `json:"branchId"`
	Type             string              `json:"type"`
	Status           string              `json:"status"`
	StatusLabel      string              `json:"statusLabel"`
	Equipment        []string            `json:"equipment"`
	LastCleaned      string              `json:"lastCleaned"`
	Assignment       *AssignmentResponse `json:"assignment,omitempty"`
	AvailableActions []string            `json:"availableActions"`
	Actions          []ActionResponse    `json:"actions"`
}

// BedListResponse список кроватей
type BedListResponse struct {
	Beds  []*BedResponse `json:"beds"`
	Total int            `json:"total"`
}

// StatsResponse сводка по статусам кроватей
type StatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// Конвертеры

// FromDomainAssignment конвертирует domain.Assignment в ответ
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	if a == nil {
		return nil
	}
	return &AssignmentResponse{
		AppointmentID:    a.AppointmentID,
		CustomerID:       a.CustomerID,
		CustomerName:     a.CustomerName,
		CustomerPhone:    a.CustomerPhone,
		Service:          a.Service,
		Staff:            a.Staff,
		StartTime:        a.StartTime.String(),
		EstimatedEndTime: a.EstimatedEndTime.String(),
		DurationMinutes:  a.DurationMinutes(),
		Status:           string(a.Status),
		Notes:            a.Notes,
	}
}

// FromDomainBed конвертирует domain.Bed в ответ
func FromDomainBed(b *domain.Bed) *BedResponse {
	equipment := make([]string, 0, len(b.Equipment))
	equipment = append(equipment, b.Equipment...)

	actions := domain.AvailableActions(b.Status)
	actionNames := make([]string, 0, len(actions))
	endpoints := make([]ActionResponse, 0, len(actions))
	for _, a := range actions {
		actionNames = append(actionNames, string(a))
		endpoints = append(endpoints, ActionEndpoint(b.ID, a))
	}

	return &BedResponse{
		ID:               b.ID,
		Name:             b.Name,
		Room:             b.Room,
		BranchID:         b.BranchID,
		Type:             string(b.Type),
		Status:           string(b.Status),
		StatusLabel:      b.Status.Label(),
		Equipment:        equipment,
		LastCleaned:      b.LastCleaned.String(),
		Assignment:       FromDomainAssignment(b.Assignment),
		AvailableActions: actionNames,
		Actions:          endpoints,
	}
}

// FromDomainBeds конвертирует список кроватей
func FromDomainBeds(beds []*domain.Bed) *BedListResponse {
	result := make([]*BedResponse, 0, len(beds))
	for _, b := range beds {
		result = append(result, FromDomainBed(b))
	}
	return &BedListResponse{Beds: result, Total: len(result)}
}

// ActionEndpoint возвращает маршрут, выполняющий действие.
// start_use открывает форму записи: кровать становится occupied только при сохранении назначения.
func ActionEndpoint(bedID int64, action domain.BedAction) ActionResponse {
	resp := ActionResponse{Name: string(action)}
	switch action {
	case domain.ActionStartUse:
		resp.Method = http.MethodGet
		resp.Path = fmt.Sprintf("/beds/%d/booking-form", bedID)
	case domain.ActionCompleteService:
		resp.Method = http.MethodPost
		resp.Path = fmt.Sprintf("/beds/%d/complete", bedID)
	case domain.ActionFinishCleaning, domain.ActionFinishMaintenance:
		resp.Method = http.MethodPatch
		resp.Path = fmt.Sprintf("/beds/%d/status", bedID)
		resp.Body = map[string]string{"status": string(domain.BedStatusAvailable)}
	}
	return resp
}
