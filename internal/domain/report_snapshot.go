package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportSnapshot é a versão persistida de um SalesReport gerado pelo agendador
type ReportSnapshot struct {
	ID                   string          `json:"id"`
	Provenance           Provenance      `json:"provenance"`
	DeliveredOrders      int             `json:"delivered_orders"`
	CanceledOrders       int             `json:"canceled_orders"`
	PendingOrders        int             `json:"pending_orders"`
	TotalDeliveredAmount decimal.Decimal `json:"total_delivered_amount"`
	TotalCanceledAmount  decimal.Decimal `json:"total_canceled_amount"`
	TopProductIDs        []int64         `json:"top_product_ids"`
	Report               *SalesReport    `json:"report"`
	CreatedAt            time.Time       `json:"created_at"`
}
