package get_bed_timeline

import (
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// Request модель запроса на получение сетки кровати
type Request struct {
	Actor *domain.User // Текущий пользователь
	BedID int64        // ID кровати
	Date  *time.Time   // День доски (по умолчанию сегодня)
}

// Response сетка слотов кровати на день
type Response struct {
	Bed        *domain.Bed     // Снимок кровати
	Date       time.Time       // День доски
	Now        types.TimeOfDay // Текущее время суток
	Slots      []domain.Slot   // Слоты сетки
	Assignment *AssignmentBlock
}

// AssignmentBlock блок назначения на сетке
type AssignmentBlock struct {
	Assignment   *domain.Assignment
	FirstSlot    *int              // Индекс слота, в котором рисуется блок (nil если вне сетки)
	HeightPixels int               // Высота блока
	Remaining    *domain.Remaining // Оставшееся время (nil, если день доски не сегодня)
}
