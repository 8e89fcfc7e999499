package bed

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/ptr"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// DefaultSeed демонстрационный набор кроватей для двух филиалов
func DefaultSeed() []*domain.Bed {
	return []*domain.Bed{
		{
			ID: 1, Name: "Giường Massage 1", Room: "Phòng Massage A", BranchID: 1,
			Type: domain.BedTypeMassage, Status: domain.BedStatusOccupied,
			Equipment:   []string{"Đá nóng", "Tinh dầu", "Khăn nóng"},
			LastCleaned: types.MustTimeOfDay("08:15"),
			Assignment: &domain.Assignment{
				AppointmentID:    "seed-1",
				CustomerID:       ptr.Ptr(int64(1)),
				CustomerName:     "Nguyễn Văn A",
				CustomerPhone:    "0901234567",
				Service:          "Massage body",
				Staff:            "Nguyễn Thị Lan",
				StartTime:        types.MustTimeOfDay("09:00"),
				EstimatedEndTime: types.MustTimeOfDay("10:30"),
				Status:           domain.AssignmentInProgress,
			},
		},
		{
			ID: 2, Name: "Giường Massage 2", Room: "Phòng Massage A", BranchID: 1,
			Type: domain.BedTypeMassage, Status: domain.BedStatusAvailable,
			Equipment:   []string{"Tinh dầu", "Khăn nóng"},
			LastCleaned: types.MustTimeOfDay("08:00"),
		},
		{
			ID: 3, Name: "Giường Chăm sóc da 1", Room: "Phòng Chăm sóc da", BranchID: 1,
			Type: domain.BedTypeFacial, Status: domain.BedStatusCleaning,
			Equipment:   []string{"Máy xông hơi", "Đèn soi da"},
			LastCleaned: types.MustTimeOfDay("07:45"),
		},
		{
			ID: 4, Name: "Giường Chăm sóc da 2", Room: "Phòng Chăm sóc da", BranchID: 1,
			Type: domain.BedTypeFacial, Status: domain.BedStatusAvailable,
			Equipment:   []string{"Máy xông hơi", "Máy điện di"},
			LastCleaned: types.MustTimeOfDay("08:05"),
		},
		{
			ID: 5, Name: "Phòng VIP 1", Room: "Phòng VIP 1", BranchID: 1,
			Type: domain.BedTypeVIP, Status: domain.BedStatusMaintenance,
			Equipment:   []string{"Bồn tắm thảo dược", "Giường đôi", "Âm thanh riêng"},
			LastCleaned: types.MustTimeOfDay("07:30"),
		},
		{
			ID: 6, Name: "Giường Massage B1", Room: "Phòng Massage B", BranchID: 2,
			Type: domain.BedTypeMassage, Status: domain.BedStatusOccupied,
			Equipment:   []string{"Đá nóng", "Tinh dầu"},
			LastCleaned: types.MustTimeOfDay("13:40"),
			Assignment: &domain.Assignment{
				AppointmentID:    "seed-2",
				CustomerID:       ptr.Ptr(int64(2)),
				CustomerName:     "Trần Thị B",
				CustomerPhone:    "0902345678",
				Service:          "Massage đá nóng",
				Staff:            "Phạm Thị Thu",
				StartTime:        types.MustTimeOfDay("14:00"),
				EstimatedEndTime: types.MustTimeOfDay("15:15"),
				Status:           domain.AssignmentPreparing,
			},
		},
		{
			ID: 7, Name: "Giường Body 1", Room: "Phòng Body", BranchID: 2,
			Type: domain.BedTypeBody, Status: domain.BedStatusAvailable,
			Equipment:   []string{"Máy tắm trắng", "Vòi sen"},
			LastCleaned: types.MustTimeOfDay("08:20"),
		},
	}
}
