package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/service/reservations"
)

const (
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidPeriod = "некорректный период, ожидается YYYY-MM-DD или YYYY-MM-DDTHH:MM, from раньше to"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?from=&to=
// Возвращает бронирования, начинающиеся в [from, to)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /reservations - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := handlers.ParseDateTime(fromStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid from %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := handlers.ParseDateTime(toStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid to %q: %v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListBetween(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid period: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations listed: from=%s, to=%s, count=%d", fromStr, toStr, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
