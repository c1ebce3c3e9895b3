package replace_discount_ranges

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-KartingService/internal/service/tariffs"
	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) ReplaceDiscountRanges(ctx context.Context, kind string, req *models.ReplaceDiscountRangesRequest) (*models.DiscountRangesResponse, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiscountRangesResponse), args.Error(1)
}

func serve(h *Handler, kind, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tariffs/discounts/{kind}", h.Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/tariffs/discounts/"+kind, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

const body = `{"ranges":[{"min":1,"max":2,"percentage":0},{"min":3,"max":5,"percentage":10}]}`

func TestHandle_Replaced(t *testing.T) {
	svc := new(MockTariffService)
	svc.On("ReplaceDiscountRanges", mock.Anything, "group_size", &models.ReplaceDiscountRangesRequest{
		Ranges: []models.DiscountRangeInput{
			{Min: 1, Max: 2, Percentage: 0},
			{Min: 3, Max: 5, Percentage: 10},
		},
	}).Return(&models.DiscountRangesResponse{
		Kind: "group_size",
		Ranges: []models.DiscountRangeResponse{
			{Min: 1, Max: 2, Percentage: 0},
			{Min: 3, Max: 5, Percentage: 10},
		},
	}, nil)

	w := serve(NewHandler(svc, logger.NewNop()), "group_size", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"kind":"group_size","ranges":[{"min":1,"max":2,"percentage":0},{"min":3,"max":5,"percentage":10}]}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown kind", err: tariffs.ErrUnknownDiscountKind},
		{name: "overlapping ranges", err: tariffs.ErrInvalidRanges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTariffService)
			svc.On("ReplaceDiscountRanges", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: details", tt.err))

			w := serve(NewHandler(svc, logger.NewNop()), "group_size", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
