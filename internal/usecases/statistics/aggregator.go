// Package statistics agrega pedidos e inventário no relatório de vendas
package statistics

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// BuildReport consolida pedidos e inventário em um SalesReport.
// É uma função pura: não faz I/O e nunca falha por causa de um pedido com
// dados inválidos (valores não numéricos contam como zero).
func BuildReport(orders []domain.Order, inventory []domain.InventoryItem, policy EstimationPolicy) *domain.SalesReport {
	delivered, canceled, pending := PartitionOrders(orders)

	report := &domain.SalesReport{
		DeliveredOrders: len(delivered),
		CanceledOrders:  len(canceled),
		PendingOrders:   len(pending),
		Provenance:      domain.ProvenanceExact,
	}

	for _, order := range orders {
		report.MalformedFields += order.MalformedFields
	}

	var malformed int
	report.TotalDeliveredAmount, malformed = sumOrderTotals(delivered)
	report.MalformedFields += malformed
	report.TotalCanceledAmount, malformed = sumOrderTotals(canceled)
	report.MalformedFields += malformed

	if policy.Mode == EstimationApproximate {
		report.Provenance = domain.ProvenanceEstimated
		report.SoldProducts, report.CanceledProducts = estimateProductStats(len(delivered), len(canceled), inventory, policy.Seed)
	} else {
		catalog := newProductCatalog(inventory)

		sold := newAccumulator(catalog)
		for _, order := range delivered {
			sold.add(order)
		}

		cancel := newAccumulator(catalog)
		for _, order := range canceled {
			cancel.add(order)
		}

		report.SoldProducts = sold.soldStats()
		report.CanceledProducts = cancel.canceledStats()
		report.MalformedFields += sold.malformed + cancel.malformed
	}

	slices.SortStableFunc(report.SoldProducts, func(a, b domain.SoldProductStat) int {
		return b.QuantitySold - a.QuantitySold
	})
	slices.SortStableFunc(report.CanceledProducts, func(a, b domain.CanceledProductStat) int {
		return b.QuantityCanceled - a.QuantityCanceled
	})

	report.DistinctProductsSold = len(report.SoldProducts)

	return report
}

// PartitionOrders separa os pedidos por status preservando a ordem de entrada.
// Toda ordem cai em exatamente uma partição.
func PartitionOrders(orders []domain.Order) (delivered, canceled, pending []domain.Order) {
	delivered = make([]domain.Order, 0)
	canceled = make([]domain.Order, 0)
	pending = make([]domain.Order, 0)

	for _, order := range orders {
		switch domain.NormalizeStatus(string(order.Status)) {
		case domain.OrderStatusDelivered:
			delivered = append(delivered, order)
		case domain.OrderStatusCanceled:
			canceled = append(canceled, order)
		default:
			pending = append(pending, order)
		}
	}

	return delivered, canceled, pending
}

func sumOrderTotals(orders []domain.Order) (decimal.Decimal, int) {
	total := decimal.Zero
	malformed := 0

	for _, order := range orders {
		amount, ok := utils.ParseAmount(order.Total)
		if !ok {
			malformed++
			continue
		}
		total = total.Add(amount)
	}

	return total, malformed
}

// productCatalog indexa o inventário por código e por nome normalizado
type productCatalog struct {
	byID   map[int]domain.InventoryItem
	byName map[string]domain.InventoryItem
}

func newProductCatalog(inventory []domain.InventoryItem) productCatalog {
	catalog := productCatalog{
		byID:   make(map[int]domain.InventoryItem, len(inventory)),
		byName: make(map[string]domain.InventoryItem, len(inventory)),
	}

	for _, item := range inventory {
		if _, exists := catalog.byID[item.ID]; !exists {
			catalog.byID[item.ID] = item
		}

		name := utils.NormalizeText(item.Name)
		if _, exists := catalog.byName[name]; name != "" && !exists {
			catalog.byName[name] = item
		}
	}

	return catalog
}

func (c productCatalog) lookup(line domain.LineItem) (domain.InventoryItem, bool) {
	if line.ProductID > 0 {
		item, ok := c.byID[line.ProductID]
		return item, ok
	}

	item, ok := c.byName[utils.NormalizeText(line.ProductName)]
	return item, ok
}

// productEntry acumula quantidade e valor de um produto
type productEntry struct {
	productID int
	name      string
	unitPrice decimal.Decimal
	quantity  int
	amount    decimal.Decimal
}

// accumulator agrega as linhas de pedido por produto, mantendo a ordem em
// que cada produto apareceu pela primeira vez
type accumulator struct {
	catalog   productCatalog
	index     map[string]int
	entries   []*productEntry
	malformed int
}

func newAccumulator(catalog productCatalog) *accumulator {
	return &accumulator{
		catalog: catalog,
		index:   make(map[string]int),
		entries: make([]*productEntry, 0),
	}
}

func (a *accumulator) add(order domain.Order) {
	for _, line := range order.Items {
		key, entry, ok := a.resolve(line)
		if !ok {
			a.malformed++
			continue
		}

		quantity := line.Quantity
		if quantity < 0 {
			a.malformed++
			quantity = 0
		}

		subtotal, valid := utils.ParseAmount(line.Subtotal)
		if !valid {
			a.malformed++
		}

		if i, exists := a.index[key]; exists {
			entry = a.entries[i]
		} else {
			a.index[key] = len(a.entries)
			a.entries = append(a.entries, entry)
		}

		entry.quantity += quantity
		entry.amount = entry.amount.Add(subtotal)
		if entry.unitPrice.IsZero() {
			entry.unitPrice = lineUnitPrice(line, quantity, subtotal)
		}
	}
}

// resolve identifica o produto da linha. Produtos do inventário usam os dados
// do inventário; produtos desconhecidos usam os dados da própria linha.
func (a *accumulator) resolve(line domain.LineItem) (string, *productEntry, bool) {
	if item, found := a.catalog.lookup(line); found {
		return fmt.Sprintf("id:%d", item.ID), &productEntry{
			productID: item.ID,
			name:      item.Name,
			unitPrice: item.UnitPrice,
			amount:    decimal.Zero,
		}, true
	}

	if line.ProductID > 0 {
		return fmt.Sprintf("id:%d", line.ProductID), &productEntry{
			productID: line.ProductID,
			name:      line.ProductName,
			amount:    decimal.Zero,
		}, true
	}

	name := utils.NormalizeText(line.ProductName)
	if name == "" {
		return "", nil, false
	}

	return "name:" + name, &productEntry{
		name:   line.ProductName,
		amount: decimal.Zero,
	}, true
}

func lineUnitPrice(line domain.LineItem, quantity int, subtotal decimal.Decimal) decimal.Decimal {
	if price, ok := utils.ParseAmount(line.UnitPrice); ok {
		return price
	}
	if quantity > 0 {
		return subtotal.Div(decimal.NewFromInt(int64(quantity))).Round(2)
	}
	return decimal.Zero
}

func (a *accumulator) soldStats() []domain.SoldProductStat {
	stats := make([]domain.SoldProductStat, 0, len(a.entries))
	for _, entry := range a.entries {
		stats = append(stats, domain.SoldProductStat{
			ProductID:    entry.productID,
			ProductName:  entry.name,
			QuantitySold: entry.quantity,
			Revenue:      entry.amount,
			UnitPrice:    entry.unitPrice,
		})
	}
	return stats
}

// canceledStats descarta produtos sem quantidade cancelada
func (a *accumulator) canceledStats() []domain.CanceledProductStat {
	stats := make([]domain.CanceledProductStat, 0, len(a.entries))
	for _, entry := range a.entries {
		if entry.quantity == 0 {
			continue
		}
		stats = append(stats, domain.CanceledProductStat{
			ProductID:          entry.productID,
			ProductName:        entry.name,
			QuantityCanceled:   entry.quantity,
			AmountNotCollected: entry.amount,
		})
	}
	return stats
}
