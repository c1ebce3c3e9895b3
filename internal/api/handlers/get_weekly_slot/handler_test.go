package get_weekly_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/internal/service/weeklyslots"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

type MockWeeklySlotService struct {
	mock.Mock
}

func (m *MockWeeklySlotService) Snapshot(ctx context.Context, year, week int) (*domain.WeeklySlot, error) {
	args := m.Called(ctx, year, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklySlot), args.Error(1)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/weekly-slots/{year}/{week}", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		slot, err := domain.NewWeeklySlot(2024, 24)
		if err != nil {
			t.Fatal(err)
		}
		slot.ReservationIDs = []int64{3, 9}

		svc := new(MockWeeklySlotService)
		svc.On("Snapshot", mock.Anything, 2024, 24).Return(slot, nil)

		w := serve(NewHandler(svc, logger.NewNop()), "/api/v1/weekly-slots/2024/24")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"year":2024,"week":24,"weekStart":"2024-06-10","weekEnd":"2024-06-16","reservationIds":[3,9]}`, w.Body.String())
	})

	t.Run("week 53 in a 52-week year", func(t *testing.T) {
		svc := new(MockWeeklySlotService)
		svc.On("Snapshot", mock.Anything, 2021, 53).Return(nil, weeklyslots.ErrInvalidWeek)

		w := serve(NewHandler(svc, logger.NewNop()), "/api/v1/weekly-slots/2021/53")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
