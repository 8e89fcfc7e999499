package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/catalog/models"
)

// Service сервис справочника. Загружает данные один раз и отдает их только для чтения
type Service struct {
	loader CatalogLoader
	logger Logger

	mu      sync.RWMutex
	catalog *domain.Catalog
}

// NewService создает новый экземпляр сервиса справочника
func NewService(loader CatalogLoader, logger Logger) *Service {
	return &Service{
		loader: loader,
		logger: logger,
	}
}

// Get возвращает справочник, загружая его при первом обращении.
// Неудачная загрузка не кэшируется, следующий вызов повторит попытку.
func (s *Service) Get(ctx context.Context) (*domain.Catalog, error) {
	s.mu.RLock()
	cached := s.catalog
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return s.catalog, nil
	}

	loaded, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: Get - %v", ErrCatalogUnavailable, err)
	}

	s.logger.Info("Get: catalog loaded: %d branches, %d rooms, %d services, %d staff, %d customers",
		len(loaded.Branches), len(loaded.Rooms), len(loaded.Services), len(loaded.Staff), len(loaded.Customers))
	s.catalog = loaded
	return loaded, nil
}

// Reload принудительно перечитывает справочник из источника
func (s *Service) Reload(ctx context.Context) error {
	loaded, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("Reload: failed to load catalog: %v", err)
		return fmt.Errorf("%w: Reload - %v", ErrCatalogUnavailable, err)
	}

	s.mu.Lock()
	s.catalog = loaded
	s.mu.Unlock()

	s.logger.Info("Reload: catalog reloaded")
	return nil
}

// View возвращает справочник, ограниченный филиалами пользователя
func (s *Service) View(ctx context.Context, actor *domain.User) (*models.CatalogResponse, error) {
	c, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.CatalogResponse{
		Branches:  make([]models.BranchResponse, 0, len(c.Branches)),
		Rooms:     make([]models.RoomResponse, 0, len(c.Rooms)),
		Services:  make([]models.ServiceResponse, 0, len(c.Services)),
		Staff:     make([]models.StaffResponse, 0, len(c.Staff)),
		Customers: make([]models.CustomerResponse, 0, len(c.Customers)),
	}

	for _, b := range c.Branches {
		if actor.CanAccessBranch(b.ID) {
			resp.Branches = append(resp.Branches, models.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address})
		}
	}
	for _, r := range c.Rooms {
		if actor.CanAccessBranch(r.BranchID) {
			resp.Rooms = append(resp.Rooms, models.RoomResponse{ID: r.ID, Name: r.Name, BranchID: r.BranchID})
		}
	}
	for _, st := range c.Staff {
		if actor.CanAccessBranch(st.BranchID) {
			resp.Staff = append(resp.Staff, models.StaffResponse{ID: st.ID, Name: st.Name, BranchID: st.BranchID})
		}
	}
	for _, sv := range c.Services {
		resp.Services = append(resp.Services, models.ServiceResponse{
			ID:              sv.ID,
			Name:            sv.Name,
			DurationMinutes: sv.DurationMinutes,
			Price:           sv.Price,
		})
	}
	for _, cu := range c.Customers {
		resp.Customers = append(resp.Customers, models.CustomerResponse{ID: cu.ID, Name: cu.Name, Phone: cu.Phone})
	}

	return resp, nil
}
