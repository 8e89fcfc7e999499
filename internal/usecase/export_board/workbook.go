package export_board

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/schedule"
)

var fixedHeader = []string{"Giường", "Phòng", "Trạng thái"}

// renderWorkbook рисует доску: строка на кровать, колонка на слот сетки
func renderWorkbook(grid domain.GridConfig, beds []*domain.Bed) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	occupiedStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FDE2E4"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create occupied style: %w", err)
	}

	// Заголовок: фиксированные колонки и время начала каждого слота
	header := append([]string(nil), fixedHeader...)
	for slot := range schedule.Slots(grid, nil) {
		header = append(header, slot.Start.String())
	}
	for col, title := range header {
		if err := setCell(f, col+1, 1, title, headerStyle); err != nil {
			return nil, err
		}
	}

	// Строки кроватей
	for i, bed := range beds {
		row := i + 2
		if err := setCell(f, 1, row, bed.Name, 0); err != nil {
			return nil, err
		}
		if err := setCell(f, 2, row, bed.Room, 0); err != nil {
			return nil, err
		}
		if err := setCell(f, 3, row, bed.Status.Label(), 0); err != nil {
			return nil, err
		}

		for slot := range schedule.Slots(grid, bed) {
			if !slot.Occupied {
				continue
			}
			col := len(fixedHeader) + slot.Index + 1
			if err := setCell(f, col, row, cellText(bed.Assignment, slot.First), occupiedStyle); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 24); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      len(fixedHeader),
		YSplit:      1,
		TopLeftCell: "D2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellText подпись занятой ячейки. Полная подпись в первом слоте, в остальных короткая
func cellText(a *domain.Assignment, first bool) string {
	if !first {
		return a.CustomerName
	}
	return fmt.Sprintf("%s - %s (%s-%s)", a.CustomerName, a.Service, a.StartTime, a.EstimatedEndTime)
}

func setCell(f *excelize.File, col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	if style != 0 {
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set style of %s: %w", cell, err)
		}
	}
	return nil
}
