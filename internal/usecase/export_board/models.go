package export_board

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// ContentType MIME тип xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName имя листа с доской
const SheetName = "Bảng giường"

// Request модель запроса на выгрузку доски
type Request struct {
	Actor    *domain.User // Текущий пользователь
	BranchID *int64       // Фильтр по филиалу (опционально)
}

// Response готовый файл
type Response struct {
	FileName string
	Content  []byte
	BedCount int
}
