package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Repository in-memory журнал записей на процедуры.
// Связывает назначения на кроватях с записью по AppointmentID.
type Repository struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
	now          func() time.Time
}

// NewRepository создает пустой журнал
func NewRepository() *Repository {
	return &Repository{
		appointments: make(map[string]*domain.Appointment),
		now:          time.Now,
	}
}

// Create сохраняет новую запись со статусом из appointment
func (r *Repository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[appointment.ID]; exists {
		return nil, ErrAppointmentExists
	}

	stored := *appointment
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.appointments[stored.ID] = &stored

	result := stored
	return &result, nil
}

// Update заменяет данные записи (кроме статуса и даты создания)
func (r *Repository) Update(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.appointments[appointment.ID]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	updated := *appointment
	updated.Status = current.Status
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = r.now()
	r.appointments[updated.ID] = &updated

	result := updated
	return &result, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.appointments[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	current.Status = status
	current.UpdatedAt = r.now()
	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	result := *current
	return &result, nil
}

// List возвращает записи по фильтру, отсортированные по времени начала, затем по кровати
func (r *Repository) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		if filter.Matches(a) {
			item := *a
			result = append(result, &item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		if result[i].BedID != result[j].BedID {
			return result[i].BedID < result[j].BedID
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ImportAssignments создает записи для назначений, уже висящих на кроватях (начальные данные)
func (r *Repository) ImportAssignments(ctx context.Context, beds []*domain.Bed) error {
	for _, bed := range beds {
		if bed == nil || bed.Assignment == nil {
			continue
		}
		a := bed.Assignment
		_, err := r.Create(ctx, &domain.Appointment{
			ID:           a.AppointmentID,
			BedID:        bed.ID,
			BedName:      bed.Name,
			BranchID:     bed.BranchID,
			CustomerID:   a.CustomerID,
			CustomerName: a.CustomerName,
			Service:      a.Service,
			Staff:        a.Staff,
			StartTime:    a.StartTime,
			EndTime:      a.EstimatedEndTime,
			Status:       domain.AppointmentScheduled,
		})
		if err != nil {
			return fmt.Errorf("import appointment %s for bed %d: %w", a.AppointmentID, bed.ID, err)
		}
	}
	return nil
}
