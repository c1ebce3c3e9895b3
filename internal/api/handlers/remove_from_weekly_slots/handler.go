package remove_from_weekly_slots

import (
	"net/http"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
)

const msgInvalidReservationID = "некорректный ID бронирования"

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

// RemoveResponse HTTP response model
type RemoveResponse struct {
	ReservationID int64 `json:"reservationId"`
	SlotsUpdated  int   `json:"slotsUpdated"`
}

// Handle DELETE /api/v1/weekly-slots/reservations/{reservationId}
// Идемпотентен: повторный вызов возвращает slotsUpdated = 0
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /weekly-slots/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	updated, err := h.service.RemoveReservation(r.Context(), reservationID)
	if err != nil {
		h.logger.Error("DELETE /weekly-slots/reservations/{id} - Failed to remove reservation: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /weekly-slots/reservations/{id} - Reservation removed: reservation_id=%d, slots=%d", reservationID, updated)
	handlers.RespondJSON(w, http.StatusOK, &RemoveResponse{ReservationID: reservationID, SlotsUpdated: updated})
}
