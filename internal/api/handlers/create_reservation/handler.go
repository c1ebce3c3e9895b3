package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-KartingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM"
	msgUnknownClient      = "клиент не найден"
	msgUnknownRateTier    = "нет тарифа для указанного количества кругов"
	msgInsufficientKarts  = "недостаточно свободных картов на выбранное время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid start time %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrUnknownClient):
			h.logger.Warn("POST /reservations - Unknown client: titular=%s", req.TitularEmail)
			handlers.RespondNotFound(w, msgUnknownClient)

		case errors.Is(err, createReservation.ErrUnknownRateTier):
			h.logger.Warn("POST /reservations - Unknown rate tier: laps=%d", req.LapCount)
			handlers.RespondBadRequest(w, msgUnknownRateTier)

		case errors.Is(err, createReservation.ErrInsufficientKarts):
			h.logger.Warn("POST /reservations - Insufficient karts: start=%s, participants=%d", req.StartTime, len(req.ParticipantEmails))
			handlers.RespondConflict(w, msgInsufficientKarts)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: titular=%s, error=%v", req.TitularEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, karts=%v, final_price=%d",
		result.ID, result.KartIDs, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
