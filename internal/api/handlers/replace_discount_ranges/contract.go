package replace_discount_ranges

import (
	"context"

	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
)

type TariffService interface {
	ReplaceDiscountRanges(ctx context.Context, kind string, req *models.ReplaceDiscountRangesRequest) (*models.DiscountRangesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
