package replace_discount_ranges

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
	"github.com/m04kA/SMC-KartingService/internal/service/tariffs"
	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownKind        = "неизвестный вид скидки, ожидается group_size или frequency"
	msgInvalidRanges      = "диапазоны скидки некорректны или пересекаются"
)

type Handler struct {
	service TariffService
	logger  Logger
}

func NewHandler(service TariffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tariffs/discounts/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	var req models.ReplaceDiscountRangesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tariffs/discounts/{kind} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceDiscountRanges(r.Context(), kind, &req)
	if err != nil {
		switch {
		case errors.Is(err, tariffs.ErrUnknownDiscountKind):
			h.logger.Warn("PUT /tariffs/discounts/{kind} - Unknown kind: %s", kind)
			handlers.RespondBadRequest(w, msgUnknownKind)

		case errors.Is(err, tariffs.ErrInvalidRanges):
			h.logger.Warn("PUT /tariffs/discounts/{kind} - Invalid ranges: kind=%s, error=%v", kind, err)
			handlers.RespondBadRequest(w, msgInvalidRanges)

		default:
			h.logger.Error("PUT /tariffs/discounts/{kind} - Failed to replace ranges: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tariffs/discounts/{kind} - Ranges replaced: kind=%s, ranges=%d", kind, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, result)
}
