package get_tariffs

import (
	"context"

	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
)

type TariffService interface {
	GetTariffs(ctx context.Context) (*models.TariffsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
