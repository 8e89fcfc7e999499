package catalog

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Static справочник из встроенных данных (используется по умолчанию и в тестах)
type Static struct {
	catalog domain.Catalog
}

// NewStatic создает справочник с демонстрационными данными
func NewStatic() *Static {
	return &Static{catalog: DefaultCatalog()}
}

// Load возвращает копию встроенного справочника
func (s *Static) Load(_ context.Context) (*domain.Catalog, error) {
	c := domain.Catalog{
		Customers: append([]domain.Customer(nil), s.catalog.Customers...),
		Services:  append([]domain.Service(nil), s.catalog.Services...),
		Staff:     append([]domain.Staff(nil), s.catalog.Staff...),
		Branches:  append([]domain.Branch(nil), s.catalog.Branches...),
		Rooms:     append([]domain.Room(nil), s.catalog.Rooms...),
	}
	return &c, nil
}

// DefaultCatalog демонстрационные справочные данные спа-салона
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Branches: []domain.Branch{
			{ID: 1, Name: "Chi nhánh Quận 1", Address: "12 Lê Lợi, Quận 1, TP.HCM"},
			{ID: 2, Name: "Chi nhánh Quận 3", Address: "85 Võ Văn Tần, Quận 3, TP.HCM"},
		},
		Rooms: []domain.Room{
			{ID: 1, Name: "Phòng Massage A", BranchID: 1},
			{ID: 2, Name: "Phòng Chăm sóc da", BranchID: 1},
			{ID: 3, Name: "Phòng VIP 1", BranchID: 1},
			{ID: 4, Name: "Phòng Massage B", BranchID: 2},
			{ID: 5, Name: "Phòng Body", BranchID: 2},
		},
		Services: []domain.Service{
			{ID: 1, Name: "Massage body", DurationMinutes: 90, Price: 450000},
			{ID: 2, Name: "Chăm sóc da mặt", DurationMinutes: 60, Price: 350000},
			{ID: 3, Name: "Điều trị mụn", DurationMinutes: 60, Price: 500000},
			{ID: 4, Name: "Tắm trắng", DurationMinutes: 120, Price: 800000},
			{ID: 5, Name: "Massage đá nóng", DurationMinutes: 75, Price: 550000},
			{ID: 6, Name: "Gội đầu dưỡng sinh", DurationMinutes: 45, Price: 200000},
		},
		Staff: []domain.Staff{
			{ID: 1, Name: "Nguyễn Thị Lan", BranchID: 1},
			{ID: 2, Name: "Trần Thị Hoa", BranchID: 1},
			{ID: 3, Name: "Lê Thị Mai", BranchID: 1},
			{ID: 4, Name: "Phạm Thị Thu", BranchID: 2},
			{ID: 5, Name: "Võ Thị Ngọc", BranchID: 2},
		},
		Customers: []domain.Customer{
			{ID: 1, Name: "Nguyễn Văn A", Phone: "0901234567"},
			{ID: 2, Name: "Trần Thị B", Phone: "0902345678"},
			{ID: 3, Name: "Lê Văn C", Phone: "0903456789"},
			{ID: 4, Name: "Phạm Thị D", Phone: "0904567890"},
			{ID: 5, Name: "Hoàng Văn E", Phone: "0905678901"},
		},
	}
}
