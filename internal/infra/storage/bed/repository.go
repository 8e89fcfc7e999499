package bed

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Repository in-memory реестр кроватей.
// Владеет списком кроватей; наружу отдаются только копии.
// Все мутации сериализуются мьютексом, поэтому каждая операция атомарна для вызывающего.
type Repository struct {
	mu   sync.RWMutex
	beds map[int64]*domain.Bed
}

// NewRepository создает реестр, заполненный начальными кроватями (seed может быть nil)
func NewRepository(seed []*domain.Bed) *Repository {
	r := &Repository{beds: make(map[int64]*domain.Bed, len(seed))}
	for _, b := range seed {
		if b != nil {
			r.beds[b.ID] = b.Clone()
		}
	}
	return r
}

// Create добавляет кровать, присваивая ей id = max(существующих)+1
func (r *Repository) Create(_ context.Context, bed *domain.Bed) (*domain.Bed, error) {
	if bed == nil {
		return nil, fmt.Errorf("%w: Create - nil bed", ErrInvalidBed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := bed.Clone()
	stored.ID = r.nextIDLocked()
	r.beds[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает кровать по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Bed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bed, ok := r.beds[id]
	if !ok {
		return nil, ErrBedNotFound
	}
	return bed.Clone(), nil
}

// List возвращает кровати, подходящие под фильтр, отсортированные по ID
func (r *Repository) List(_ context.Context, filter domain.BedFilter) ([]*domain.Bed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Bed, 0, len(r.beds))
	for _, bed := range r.beds {
		if filter.Matches(bed) {
			result = append(result, bed.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update атомарно изменяет кровать функцией mutate.
// mutate получает рабочую копию; если она вернула ошибку, реестр не меняется.
func (r *Repository) Update(_ context.Context, id int64, mutate func(bed *domain.Bed) error) (*domain.Bed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.beds[id]
	if !ok {
		return nil, ErrBedNotFound
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id
	r.beds[id] = working

	return working.Clone(), nil
}

// Delete удаляет кровать вместе с текущим назначением и возвращает удаленную запись
func (r *Repository) Delete(_ context.Context, id int64) (*domain.Bed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bed, ok := r.beds[id]
	if !ok {
		return nil, ErrBedNotFound
	}
	delete(r.beds, id)

	return bed, nil
}

// CountByStatus возвращает количество кроватей по статусам для фильтра
func (r *Repository) CountByStatus(_ context.Context, filter domain.BedFilter) (map[domain.BedStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.BedStatus]int, len(domain.AllBedStatuses))
	for _, s := range domain.AllBedStatuses {
		counts[s] = 0
	}
	for _, bed := range r.beds {
		if filter.Matches(bed) {
			counts[bed.Status]++
		}
	}
	return counts, nil
}

func (r *Repository) nextIDLocked() int64 {
	var maxID int64
	for id := range r.beds {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
