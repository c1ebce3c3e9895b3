package get_available_karts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/domain"
	getAvailableKarts "github.com/m04kA/SMC-KartingService/internal/usecase/get_available_karts"
)

const (
	msgInvalidStartTime = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidLaps      = "некорректное количество кругов"
	msgUnknownRateTier  = "нет тарифа для указанного количества кругов"
)

type Handler struct {
	useCase GetAvailableKartsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableKartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/karts/availability?start=&laps=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	start, err := time.Parse(domain.DateTimeFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /karts/availability - Invalid start %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	laps, err := strconv.Atoi(r.URL.Query().Get("laps"))
	if err != nil {
		h.logger.Warn("GET /karts/availability - Invalid laps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaps)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableKarts.Request{StartTime: start, LapCount: laps})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableKarts.ErrInvalidInput):
			h.logger.Warn("GET /karts/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLaps)

		case errors.Is(err, getAvailableKarts.ErrUnknownRateTier):
			h.logger.Warn("GET /karts/availability - Unknown rate tier: laps=%d", laps)
			handlers.RespondBadRequest(w, msgUnknownRateTier)

		default:
			h.logger.Error("GET /karts/availability - Failed to get availability: start=%s, laps=%d, error=%v", startStr, laps, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /karts/availability - Availability retrieved: start=%s, laps=%d, free=%d", startStr, laps, len(result.AvailableKartIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
