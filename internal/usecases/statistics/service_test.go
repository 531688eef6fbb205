package statistics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics/mocks"
	"go.uber.org/mock/gomock"
)

var (
	testOrders = []domain.Order{
		{ID: 1, Total: "20", Status: domain.OrderStatusDelivered, Items: []domain.LineItem{
			{ProductID: 1, ProductName: "Leche Gloria", Quantity: 4, Subtotal: "18"},
			{ProductID: 2, ProductName: "Galleta Oreo", Quantity: 1, Subtotal: "2"},
		}},
		{ID: 2, Total: "15", Status: domain.OrderStatusCanceled, Items: []domain.LineItem{
			{ProductID: 2, ProductName: "Galleta Oreo", Quantity: 3, Subtotal: "6"},
		}},
		{ID: 3, Total: "30", Status: domain.OrderStatusDelivered, Items: []domain.LineItem{
			{ProductID: 3, ProductName: "Inca Kola", Quantity: 3, Subtotal: "30"},
		}},
	}
	testInventory = []domain.InventoryItem{
		{ID: 1, Name: "Leche Gloria", Active: true},
		{ID: 2, Name: "Galleta Oreo", Active: true},
		{ID: 3, Name: "Inca Kola", Active: true},
	}
)

func TestService_GetReport(t *testing.T) {
	ctx := context.Background()
	fetchErr := errors.New("backend indisponível")

	tests := []struct {
		name        string
		setup       func(source *mocks.MockSource, cache *mocks.MockReportCache)
		expectedErr error
		validate    func(t *testing.T, report *domain.SalesReport)
	}{
		{
			name: "Gera relatório e salva no cache",
			setup: func(source *mocks.MockSource, cache *mocks.MockReportCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				source.EXPECT().FetchOrderHistory(gomock.Any()).Return(testOrders, nil)
				source.EXPECT().FetchInventory(gomock.Any()).Return(testInventory, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)
			},
			validate: func(t *testing.T, report *domain.SalesReport) {
				assert.Equal(t, 2, report.DeliveredOrders)
				assert.Equal(t, 1, report.CanceledOrders)
				assert.Equal(t, "50", report.TotalDeliveredAmount.String())
				assert.False(t, report.GeneratedAt.IsZero())
			},
		},
		{
			name: "Usa relatório do cache sem chamar o backend",
			setup: func(source *mocks.MockSource, cache *mocks.MockReportCache) {
				cached := domain.NewEmptyReport(domain.ProvenanceExact)
				cached.DeliveredOrders = 99
				cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)
			},
			validate: func(t *testing.T, report *domain.SalesReport) {
				assert.Equal(t, 99, report.DeliveredOrders)
			},
		},
		{
			name: "Erro no cache não impede a geração",
			setup: func(source *mocks.MockSource, cache *mocks.MockReportCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis fora"))
				source.EXPECT().FetchOrderHistory(gomock.Any()).Return(testOrders, nil)
				source.EXPECT().FetchInventory(gomock.Any()).Return(testInventory, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis fora"))
			},
			validate: func(t *testing.T, report *domain.SalesReport) {
				assert.Equal(t, 3, report.TotalOrders())
			},
		},
		{
			name: "Falha ao buscar pedidos propaga o erro sem alteração",
			setup: func(source *mocks.MockSource, cache *mocks.MockReportCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				source.EXPECT().FetchOrderHistory(gomock.Any()).Return(nil, fetchErr)
				source.EXPECT().FetchInventory(gomock.Any()).Return(testInventory, nil)
			},
			expectedErr: fetchErr,
		},
		{
			name: "Falha ao buscar inventário propaga o erro sem alteração",
			setup: func(source *mocks.MockSource, cache *mocks.MockReportCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				source.EXPECT().FetchOrderHistory(gomock.Any()).Return(testOrders, nil)
				source.EXPECT().FetchInventory(gomock.Any()).Return(nil, fetchErr)
			},
			expectedErr: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockSource(ctrl)
			cache := mocks.NewMockReportCache(ctrl)
			tt.setup(source, cache)

			service := statistics.NewService(source, cache, statistics.Exact(), time.Minute)
			report, err := service.GetReport(ctx)

			if tt.expectedErr != nil {
				assert.Same(t, tt.expectedErr, err)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_Top(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().FetchOrderHistory(gomock.Any()).Return(testOrders, nil).Times(4)
	source.EXPECT().FetchInventory(gomock.Any()).Return(testInventory, nil).Times(4)

	// sem cache cada chamada gera um novo relatório
	service := statistics.NewService(source, nil, statistics.Exact(), 0)
	ctx := context.Background()

	sold, err := service.TopSold(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, "Leche Gloria", sold[0].ProductName)

	revenue, err := service.TopRevenue(ctx, statistics.DefaultLimit)
	require.NoError(t, err)
	require.Len(t, revenue, 3)
	assert.Equal(t, "Inca Kola", revenue[0].ProductName)

	canceled, err := service.TopCanceled(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, canceled)

	series, err := service.Chart(ctx, statistics.ChartViewStatus, statistics.DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0}, series.Values())
}

func TestService_ChartVisaoInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := statistics.NewService(mocks.NewMockSource(ctrl), nil, statistics.Exact(), 0)

	_, err := service.Chart(context.Background(), statistics.ChartView("x"), 5)
	assert.ErrorIs(t, err, statistics.ErrInvalidChartView)
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	cache := mocks.NewMockReportCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 30*time.Second).Return(nil),
	)
	source.EXPECT().FetchOrderHistory(gomock.Any()).Return(testOrders, nil)
	source.EXPECT().FetchInventory(gomock.Any()).Return(testInventory, nil)

	service := statistics.NewService(source, cache, statistics.Approximate(3), 30*time.Second)
	report, err := service.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceEstimated, report.Provenance)
}
