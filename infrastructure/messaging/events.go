package messaging

import "time"

const RoutingKeyReportSnapshotCreated = "sales.report.snapshot"

// ReportSnapshotCreated é publicado a cada snapshot salvo pelo agendador
type ReportSnapshotCreated struct {
	SnapshotID           string    `json:"snapshot_id"`
	Provenance           string    `json:"provenance"`
	DeliveredOrders      int       `json:"delivered_orders"`
	CanceledOrders       int       `json:"canceled_orders"`
	PendingOrders        int       `json:"pending_orders"`
	TotalDeliveredAmount string    `json:"total_delivered_amount"`
	TotalCanceledAmount  string    `json:"total_canceled_amount"`
	TopProductIDs        []int64   `json:"top_product_ids"`
	CreatedAt            time.Time `json:"created_at"`
}
