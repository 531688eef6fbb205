package statistics

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const reportCacheKey = "sales_report"

type Service struct {
	source   Source
	cache    ReportCache
	policy   EstimationPolicy
	cacheTTL time.Duration
	now      func() time.Time
}

// NewService cria o serviço de estatísticas. cache pode ser nil.
func NewService(source Source, cache ReportCache, policy EstimationPolicy, cacheTTL time.Duration) *Service {
	return &Service{
		source:   source,
		cache:    cache,
		policy:   policy,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *Service) GetReport(ctx context.Context) (*domain.SalesReport, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx, reportCacheKey)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao ler relatório do cache")
		} else if report != nil {
			return report, nil
		}
	}

	return s.generate(ctx)
}

func (s *Service) Refresh(ctx context.Context) (*domain.SalesReport, error) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, reportCacheKey); err != nil {
			logrus.WithError(err).Warn("Erro ao invalidar relatório do cache")
		}
	}

	return s.generate(ctx)
}

func (s *Service) TopSold(ctx context.Context, n int) ([]domain.SoldProductStat, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	return Top(report.SoldByQuantity(), n), nil
}

func (s *Service) TopRevenue(ctx context.Context, n int) ([]domain.SoldProductStat, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	return Top(report.SoldByRevenue(), n), nil
}

func (s *Service) TopCanceled(ctx context.Context, n int) ([]domain.CanceledProductStat, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	return Top(report.CanceledByQuantity(), n), nil
}

func (s *Service) Chart(ctx context.Context, view ChartView, n int) (domain.ChartSeries, error) {
	if _, err := ParseChartView(string(view)); err != nil {
		return domain.ChartSeries{}, err
	}

	report, err := s.GetReport(ctx)
	if err != nil {
		return domain.ChartSeries{}, err
	}

	return BuildChart(report, view, n)
}

// generate busca pedidos e inventário em paralelo e agrega o relatório.
// Se alguma das buscas falhar o erro do backend é retornado sem alteração.
func (s *Service) generate(ctx context.Context) (*domain.SalesReport, error) {
	var (
		orders       []domain.Order
		inventory    []domain.InventoryItem
		ordersErr    error
		inventoryErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.source.FetchOrderHistory(ctx)
	}()

	go func() {
		defer wg.Done()
		inventory, inventoryErr = s.source.FetchInventory(ctx)
	}()

	wg.Wait()

	if ordersErr != nil {
		logrus.WithError(ordersErr).Error("Erro ao buscar histórico de pedidos")
		return nil, ordersErr
	}

	if inventoryErr != nil {
		logrus.WithError(inventoryErr).Error("Erro ao buscar inventário")
		return nil, inventoryErr
	}

	report := BuildReport(orders, inventory, s.policy)
	report.GeneratedAt = s.now()

	if report.MalformedFields > 0 {
		logrus.WithField("malformed_fields", report.MalformedFields).
			Warn("Relatório gerado com valores inválidos tratados como zero")
	}

	logrus.WithFields(logrus.Fields{
		"policy":    s.policy.String(),
		"delivered": report.DeliveredOrders,
		"canceled":  report.CanceledOrders,
		"pending":   report.PendingOrders,
	}).Info("Relatório de vendas gerado")

	if s.cache != nil {
		if err := s.cache.Set(ctx, reportCacheKey, report, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("Erro ao salvar relatório no cache")
		}
	}

	return report, nil
}
