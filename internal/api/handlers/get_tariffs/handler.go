package get_tariffs

import (
	"net/http"

	"github.com/m04kA/SMC-KartingService/internal/api/handlers"
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

// Handle GET /api/v1/tariffs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.service.GetTariffs(r.Context())
	if err != nil {
		h.logger.Error("GET /tariffs - Failed to get tariffs: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tariffs)
}
