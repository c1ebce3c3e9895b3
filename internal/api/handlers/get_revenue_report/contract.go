package get_revenue_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

type ReportService interface {
	Revenue(ctx context.Context, dimension domain.RevenueDimension, from, to time.Time) (*domain.RevenueReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
