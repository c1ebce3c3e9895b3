package get_revenue_report

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/service/reports"
)

const (
	msgUnknownDimension = "неизвестный разрез отчёта, ожидается laps, headcount или duration"
	msgMissingPeriod    = "параметры from и to обязательны"
	msgInvalidPeriod    = "некорректный период, ожидается YYYY-MM-DD или YYYY-MM-DDTHH:MM, from раньше to"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/revenue/{dimension}?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dimension, err := reports.ParseDimension(mux.Vars(r)["dimension"])
	if err != nil {
		h.logger.Warn("GET /reports/revenue/{dimension} - %v", err)
		handlers.RespondBadRequest(w, msgUnknownDimension)
		return
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /reports/revenue/{dimension} - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, errFrom := handlers.ParseDateTime(fromStr)
	to, errTo := handlers.ParseDateTime(toStr)
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /reports/revenue/{dimension} - Invalid period: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.service.Revenue(r.Context(), dimension, from, to)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/revenue/{dimension} - Invalid period: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reports.ErrUnknownDimension):
			handlers.RespondBadRequest(w, msgUnknownDimension)

		default:
			h.logger.Error("GET /reports/revenue/{dimension} - Failed to build report: dimension=%s, error=%v", dimension, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/revenue/{dimension} - Report built: dimension=%s, rows=%d", dimension, len(report.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(report))
}
