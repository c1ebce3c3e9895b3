package get_available_karts

import (
	"context"

	getAvailableKarts "github.com/m04kA/SMC-KartingService/internal/usecase/get_available_karts"
)

type GetAvailableKartsUseCase interface {
	Execute(ctx context.Context, req *getAvailableKarts.Request) (*getAvailableKarts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
