package get_revenue_report

import (
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

type RevenueRowResponse struct {
	Criterion    string `json:"criterion"`
	Reservations int    `json:"reservations"`
	TotalRevenue int64  `json:"totalRevenue"`
}

// RevenueReportResponse HTTP response model
type RevenueReportResponse struct {
	Dimension   string               `json:"dimension"`
	From        string               `json:"from"`
	To          string               `json:"to"`
	Rows        []RevenueRowResponse `json:"rows"`
	Total       int64                `json:"total"`
	GeneratedAt string               `json:"generatedAt"`
}

func FromDomain(report *domain.RevenueReport) *RevenueReportResponse {
	resp := &RevenueReportResponse{
		Dimension:   string(report.Dimension),
		From:        report.From.Format(domain.DateTimeFormat),
		To:          report.To.Format(domain.DateTimeFormat),
		Rows:        make([]RevenueRowResponse, 0, len(report.Rows)),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
	}

	for _, row := range report.Rows {
		resp.Rows = append(resp.Rows, RevenueRowResponse{
			Criterion:    row.Criterion,
			Reservations: row.Reservations,
			TotalRevenue: row.TotalRevenue,
		})
		resp.Total += row.TotalRevenue
	}

	return resp
}
