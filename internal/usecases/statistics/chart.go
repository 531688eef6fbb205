package statistics

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type ChartView string

const (
	ChartViewSales    ChartView = "sales"
	ChartViewRevenue  ChartView = "revenue"
	ChartViewCanceled ChartView = "canceled"
	ChartViewStatus   ChartView = "status"
)

const (
	LabelQuantitySold     = "Cantidad Vendida"
	LabelRevenue          = "Ganancias (S/)"
	LabelQuantityCanceled = "Cantidad Cancelada"
	LabelOrderStatus      = "Estado de Pedidos"

	labelDelivered = "Entregados"
	labelCanceled  = "Cancelados"
	labelPending   = "Pendientes"
)

func ParseChartView(raw string) (ChartView, error) {
	switch view := ChartView(raw); view {
	case ChartViewSales, ChartViewRevenue, ChartViewCanceled, ChartViewStatus:
		return view, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidChartView, raw)
	}
}

// ToChartSeries projeta uma visão em uma série de rótulos e valores,
// preservando a ordem da visão
func ToChartSeries[T any](label string, view []T, projection func(T) domain.ChartPoint) domain.ChartSeries {
	points := make([]domain.ChartPoint, 0, len(view))
	for _, entry := range view {
		points = append(points, projection(entry))
	}

	return domain.ChartSeries{
		Label:  label,
		Points: points,
	}
}

func QuantitySoldPoint(stat domain.SoldProductStat) domain.ChartPoint {
	return domain.ChartPoint{Label: stat.ProductName, Value: float64(stat.QuantitySold)}
}

func RevenuePoint(stat domain.SoldProductStat) domain.ChartPoint {
	return domain.ChartPoint{Label: stat.ProductName, Value: stat.Revenue.InexactFloat64()}
}

func QuantityCanceledPoint(stat domain.CanceledProductStat) domain.ChartPoint {
	return domain.ChartPoint{Label: stat.ProductName, Value: float64(stat.QuantityCanceled)}
}

// StatusSeries monta a série de pedidos por status (entregues, cancelados, pendentes)
func StatusSeries(report *domain.SalesReport) domain.ChartSeries {
	return domain.ChartSeries{
		Label: LabelOrderStatus,
		Points: []domain.ChartPoint{
			{Label: labelDelivered, Value: float64(report.DeliveredOrders)},
			{Label: labelCanceled, Value: float64(report.CanceledOrders)},
			{Label: labelPending, Value: float64(report.PendingOrders)},
		},
	}
}

// BuildChart gera a série de uma visão do relatório limitada a n itens.
// A visão de status ignora o limite.
func BuildChart(report *domain.SalesReport, view ChartView, n int) (domain.ChartSeries, error) {
	switch view {
	case ChartViewSales:
		return ToChartSeries(LabelQuantitySold, Top(report.SoldByQuantity(), n), QuantitySoldPoint), nil
	case ChartViewRevenue:
		return ToChartSeries(LabelRevenue, Top(report.SoldByRevenue(), n), RevenuePoint), nil
	case ChartViewCanceled:
		return ToChartSeries(LabelQuantityCanceled, Top(report.CanceledByQuantity(), n), QuantityCanceledPoint), nil
	case ChartViewStatus:
		return StatusSeries(report), nil
	default:
		return domain.ChartSeries{}, fmt.Errorf("%w: %q", ErrInvalidChartView, view)
	}
}
