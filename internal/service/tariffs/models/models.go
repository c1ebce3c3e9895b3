package models

import "github.com/m04kA/SMC-KartingService/internal/domain"

// Request модели

// DiscountRangeInput диапазон скидки во входящем запросе
type DiscountRangeInput struct {
	Min        int `json:"min"`
	Max        int `json:"max"`
	Percentage int `json:"percentage"`
}

// ReplaceDiscountRangesRequest запрос на замену таблицы скидки
type ReplaceDiscountRangesRequest struct {
	Ranges []DiscountRangeInput `json:"ranges"`
}

// ToDomain конвертирует запрос в доменные диапазоны
func (r *ReplaceDiscountRangesRequest) ToDomain(kind domain.DiscountKind) []domain.DiscountRange {
	ranges := make([]domain.DiscountRange, 0, len(r.Ranges))
	for _, in := range r.Ranges {
		ranges = append(ranges, domain.DiscountRange{
			Kind:       kind,
			Min:        in.Min,
			Max:        in.Max,
			Percentage: in.Percentage,
		})
	}
	return ranges
}

// Response модели

type RateResponse struct {
	LapCount        int `json:"lapCount"`
	PricePerPerson  int `json:"pricePerPerson"`
	DurationMinutes int `json:"durationMinutes"`
}

type DiscountRangeResponse struct {
	Min        int `json:"min"`
	Max        int `json:"max"`
	Percentage int `json:"percentage"`
}

type HolidayResponse struct {
	Date string `json:"date"` // "2024-09-18"
	Name string `json:"name"`
}

// SpecialDatesResponse фиксированные скидки по особым датам
type SpecialDatesResponse struct {
	Birthday int `json:"birthday"`
	Weekend  int `json:"weekend"`
	Holiday  int `json:"holiday"`
}

// TariffsResponse полная тарифная сетка
type TariffsResponse struct {
	Rates        []RateResponse          `json:"rates"`
	GroupSize    []DiscountRangeResponse `json:"groupSize"`
	Frequency    []DiscountRangeResponse `json:"frequency"`
	Holidays     []HolidayResponse       `json:"holidays"`
	SpecialDates SpecialDatesResponse    `json:"specialDates"`
	TaxPercent   int                     `json:"taxPercent"`
}

// DiscountRangesResponse таблица скидки одного вида
type DiscountRangesResponse struct {
	Kind   string                  `json:"kind"`
	Ranges []DiscountRangeResponse `json:"ranges"`
}

// Методы конвертации

func FromDomainRanges(ranges []domain.DiscountRange) []DiscountRangeResponse {
	resp := make([]DiscountRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		resp = append(resp, DiscountRangeResponse{Min: r.Min, Max: r.Max, Percentage: r.Percentage})
	}
	return resp
}

func FromDomainRates(rates []domain.Rate) []RateResponse {
	resp := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		resp = append(resp, RateResponse{LapCount: r.LapCount, PricePerPerson: r.PricePerPerson, DurationMinutes: r.DurationMinutes})
	}
	return resp
}

func FromDomainHolidays(holidays []domain.Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, HolidayResponse{Date: h.Date.Format(domain.DateFormat), Name: h.Name})
	}
	return resp
}
