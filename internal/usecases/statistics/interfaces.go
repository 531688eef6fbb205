package statistics

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Source define as leituras feitas no backend de pedidos e inventário
type Source interface {
	FetchOrderHistory(ctx context.Context) ([]domain.Order, error)
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)
}

// ReportCache guarda o último relatório gerado. Get retorna nil, nil quando
// não há relatório válido.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.SalesReport, error)
	Set(ctx context.Context, key string, report *domain.SalesReport, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StatisticsService expõe o relatório de vendas e suas projeções
type StatisticsService interface {
	// GetReport retorna o relatório do cache ou gera um novo
	GetReport(ctx context.Context) (*domain.SalesReport, error)

	TopSold(ctx context.Context, n int) ([]domain.SoldProductStat, error)
	TopRevenue(ctx context.Context, n int) ([]domain.SoldProductStat, error)
	TopCanceled(ctx context.Context, n int) ([]domain.CanceledProductStat, error)

	// Chart gera a série de uma visão limitada a n itens
	Chart(ctx context.Context, view ChartView, n int) (domain.ChartSeries, error)

	// Refresh descarta o cache e gera um novo relatório
	Refresh(ctx context.Context) (*domain.SalesReport, error)
}
