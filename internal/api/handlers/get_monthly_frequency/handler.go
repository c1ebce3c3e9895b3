package get_monthly_frequency

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/internal/service/reservations"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgClientNotFound  = "клиент не найден"
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

// Handle GET /api/v1/clients/{clientId}/monthly-frequency?date=
// Без даты считается текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/monthly-frequency - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	date := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /clients/{id}/monthly-frequency - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.MonthlyCount(r.Context(), clientID, date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id}/monthly-frequency - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{id}/monthly-frequency - Failed to count reservations: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
