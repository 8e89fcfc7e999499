package domain

// Default grid values
const (
	DefaultGridStartMinutes    = 8 * 60 // 08:00
	DefaultGridSlotCount       = 12     // 08:00-19:00 rows
	DefaultSlotDurationMinutes = 60
	DefaultSlotPixelHeight     = 60
	DefaultGapPixels           = 4
	DefaultMinHeightPixels     = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240
	MaxBedNameLength       = 100
	MaxEquipmentItems      = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
