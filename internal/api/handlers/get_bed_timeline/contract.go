package get_bed_timeline

import (
	"context"

	getBedTimeline "github.com/m04kA/SMC-SpaBoard/internal/usecase/get_bed_timeline"
)

type GetBedTimelineUseCase interface {
	Execute(ctx context.Context, req *getBedTimeline.Request) (*getBedTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
