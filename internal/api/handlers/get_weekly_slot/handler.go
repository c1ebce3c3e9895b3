package get_weekly_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/service/weeklyslots"
)

const (
	msgInvalidYear = "некорректный год"
	msgInvalidWeek = "некорректный номер ISO-недели"
)

type Handler struct {
	service WeeklySlotService
	logger  Logger
}

func NewHandler(service WeeklySlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/weekly-slots/{year}/{week}
// Снимок пересобирается из бронирований при каждом запросе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := handlers.PathInt(r, "year")
	if err != nil || year < 1 {
		h.logger.Warn("GET /weekly-slots/{year}/{week} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	week, err := handlers.PathInt(r, "week")
	if err != nil {
		h.logger.Warn("GET /weekly-slots/{year}/{week} - Invalid week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	slot, err := h.service.Snapshot(r.Context(), year, week)
	if err != nil {
		switch {
		case errors.Is(err, weeklyslots.ErrInvalidWeek):
			h.logger.Warn("GET /weekly-slots/{year}/{week} - Invalid ISO week: year=%d, week=%d", year, week)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /weekly-slots/{year}/{week} - Failed to build snapshot: year=%d, week=%d, error=%v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(slot))
}
