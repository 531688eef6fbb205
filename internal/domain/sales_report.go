package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Provenance indica a origem dos números de um relatório
type Provenance string

const (
	ProvenanceExact       Provenance = "exact"
	ProvenanceEstimated   Provenance = "estimated"
	ProvenancePlaceholder Provenance = "placeholder"
)

type SoldProductStat struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Estimated    bool            `json:"estimated"`
}

type CanceledProductStat struct {
	ProductID          int             `json:"product_id"`
	ProductName        string          `json:"product_name"`
	QuantityCanceled   int             `json:"quantity_canceled"`
	AmountNotCollected decimal.Decimal `json:"amount_not_collected"`
	Estimated          bool            `json:"estimated"`
}

// SalesReport é o relatório consolidado de vendas. SoldProducts e
// CanceledProducts já vêm ordenados por quantidade (desc).
type SalesReport struct {
	SoldProducts         []SoldProductStat     `json:"sold_products"`
	CanceledProducts     []CanceledProductStat `json:"canceled_products"`
	DistinctProductsSold int                   `json:"distinct_products_sold"`
	TotalDeliveredAmount decimal.Decimal       `json:"total_delivered_amount"`
	TotalCanceledAmount  decimal.Decimal       `json:"total_canceled_amount"`
	DeliveredOrders      int                   `json:"delivered_orders"`
	CanceledOrders       int                   `json:"canceled_orders"`
	PendingOrders        int                   `json:"pending_orders"`
	Provenance           Provenance            `json:"provenance"`
	MalformedFields      int                   `json:"malformed_fields"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

// NewEmptyReport cria um relatório zerado com a origem informada
func NewEmptyReport(provenance Provenance) *SalesReport {
	return &SalesReport{
		SoldProducts:         []SoldProductStat{},
		CanceledProducts:     []CanceledProductStat{},
		TotalDeliveredAmount: decimal.Zero,
		TotalCanceledAmount:  decimal.Zero,
		Provenance:           provenance,
		GeneratedAt:          time.Now(),
	}
}

// TotalOrders retorna a soma das três partições
func (r *SalesReport) TotalOrders() int {
	return r.DeliveredOrders + r.CanceledOrders + r.PendingOrders
}

// SoldByQuantity retorna uma cópia dos produtos vendidos ordenada por quantidade
func (r *SalesReport) SoldByQuantity() []SoldProductStat {
	view := slices.Clone(r.SoldProducts)
	slices.SortStableFunc(view, func(a, b SoldProductStat) int {
		return b.QuantitySold - a.QuantitySold
	})
	return view
}

// SoldByRevenue retorna uma cópia dos produtos vendidos ordenada por receita
func (r *SalesReport) SoldByRevenue() []SoldProductStat {
	view := slices.Clone(r.SoldProducts)
	slices.SortStableFunc(view, func(a, b SoldProductStat) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	return view
}

// CanceledByQuantity retorna uma cópia dos produtos cancelados ordenada por quantidade
func (r *SalesReport) CanceledByQuantity() []CanceledProductStat {
	view := slices.Clone(r.CanceledProducts)
	slices.SortStableFunc(view, func(a, b CanceledProductStat) int {
		return b.QuantityCanceled - a.QuantityCanceled
	})
	return view
}
