package domain

import "time"

// RevenueDimension разрез отчёта по выручке
type RevenueDimension string

const (
	RevenueByLaps      RevenueDimension = "laps"
	RevenueByHeadcount RevenueDimension = "headcount"
	RevenueByDuration  RevenueDimension = "duration"
)

// RevenueRow строка отчёта: критерий группировки и сумма итоговых цен
type RevenueRow struct {
	Criterion    string
	Reservations int
	TotalRevenue int64
}

// RevenueReport отчёт по выручке за период [From, To)
type RevenueReport struct {
	Dimension   RevenueDimension
	From        time.Time
	To          time.Time
	Rows        []RevenueRow
	GeneratedAt time.Time
}
