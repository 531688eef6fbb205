package statistics

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func order(id int, total string, status domain.OrderStatus, items ...domain.LineItem) domain.Order {
	return domain.Order{ID: id, Total: total, Status: status, Items: items}
}

func item(productID int, name string, quantity int, subtotal string) domain.LineItem {
	return domain.LineItem{ProductID: productID, ProductName: name, Quantity: quantity, Subtotal: subtotal}
}

func testInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Leche Gloria", UnitPrice: decimal.RequireFromString("4.50"), Active: true},
		{ID: 2, Name: "Galleta Oreo", UnitPrice: decimal.RequireFromString("2.00"), Active: true},
		{ID: 3, Name: "Arroz Costeño", UnitPrice: decimal.RequireFromString("5.20"), Active: false},
		{ID: 4, Name: "Inca Kola", UnitPrice: decimal.RequireFromString("7.00"), Active: true},
		{ID: 5, Name: "Detergente Ariel", UnitPrice: decimal.RequireFromString("12.90"), Active: true},
		{ID: 6, Name: "Avena Quaker", UnitPrice: decimal.RequireFromString("6.10"), Active: true},
		{ID: 7, Name: "Yogurt Laive", UnitPrice: decimal.RequireFromString("3.80"), Active: true},
	}
}

func TestBuildReport_Totais(t *testing.T) {
	tests := []struct {
		name              string
		orders            []domain.Order
		expectedDelivered int
		expectedCanceled  int
		expectedPending   int
		expectedTotal     string
		expectedCanceledT string
		expectedMalformed int
	}{
		{
			name: "Dois entregues e um cancelado",
			orders: []domain.Order{
				order(1, "20", domain.OrderStatusDelivered),
				order(2, "15", domain.OrderStatusCanceled),
				order(3, "30", domain.OrderStatusDelivered),
			},
			expectedDelivered: 2,
			expectedCanceled:  1,
			expectedPending:   0,
			expectedTotal:     "50",
			expectedCanceledT: "15",
		},
		{
			name:              "Sem pedidos",
			orders:            []domain.Order{},
			expectedTotal:     "0",
			expectedCanceledT: "0",
		},
		{
			name: "Total não numérico conta como zero",
			orders: []domain.Order{
				order(1, "abc", domain.OrderStatusDelivered),
				order(2, "10.5", domain.OrderStatusDelivered),
			},
			expectedDelivered: 2,
			expectedTotal:     "10.5",
			expectedCanceledT: "0",
			expectedMalformed: 1,
		},
		{
			name: "Total negativo ou vazio conta como zero",
			orders: []domain.Order{
				order(1, "-8", domain.OrderStatusCanceled),
				order(2, "", domain.OrderStatusCanceled),
				order(3, "3", domain.OrderStatusCanceled),
			},
			expectedCanceled:  3,
			expectedTotal:     "0",
			expectedCanceledT: "3",
			expectedMalformed: 2,
		},
		{
			name: "Expoente gigante conta como zero",
			orders: []domain.Order{
				order(1, "20", domain.OrderStatusDelivered),
				order(2, "1e400000000", domain.OrderStatusDelivered),
				order(3, "1e-400000000", domain.OrderStatusCanceled),
			},
			expectedDelivered: 2,
			expectedCanceled:  1,
			expectedTotal:     "20",
			expectedCanceledT: "0",
			expectedMalformed: 2,
		},
		{
			name: "Sequência longa de dígitos conta como zero",
			orders: []domain.Order{
				order(1, strings.Repeat("9", 5000), domain.OrderStatusDelivered),
				order(2, "7.25", domain.OrderStatusDelivered),
			},
			expectedDelivered: 2,
			expectedTotal:     "7.25",
			expectedCanceledT: "0",
			expectedMalformed: 1,
		},
		{
			name: "Status desconhecido vira pendente",
			orders: []domain.Order{
				order(1, "10", domain.OrderStatus("En camino")),
				order(2, "10", domain.OrderStatusPending),
				order(3, "10", domain.OrderStatus("ENTREGADO")),
			},
			expectedDelivered: 1,
			expectedPending:   2,
			expectedTotal:     "10",
			expectedCanceledT: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(tt.orders, nil, Exact())

			assert.Equal(t, tt.expectedDelivered, report.DeliveredOrders)
			assert.Equal(t, tt.expectedCanceled, report.CanceledOrders)
			assert.Equal(t, tt.expectedPending, report.PendingOrders)
			assert.Equal(t, len(tt.orders), report.TotalOrders())
			assert.True(t, decimal.RequireFromString(tt.expectedTotal).Equal(report.TotalDeliveredAmount),
				"total entregue: %s", report.TotalDeliveredAmount)
			assert.True(t, decimal.RequireFromString(tt.expectedCanceledT).Equal(report.TotalCanceledAmount),
				"total cancelado: %s", report.TotalCanceledAmount)
			assert.Equal(t, tt.expectedMalformed, report.MalformedFields)
			assert.Equal(t, domain.ProvenanceExact, report.Provenance)
		})
	}
}

func TestBuildReport_ContaCamposInteirosInvalidos(t *testing.T) {
	orders := []domain.Order{
		order(1, "20", domain.OrderStatusDelivered, item(1, "Leche Gloria", 2, "9.00")),
		{ID: 2, Total: "5", Status: domain.OrderStatusDelivered, MalformedFields: 1,
			Items: []domain.LineItem{item(2, "Galleta Oreo", 0, "5")}},
	}

	report := BuildReport(orders, testInventory(), Exact())

	assert.Equal(t, 2, report.DeliveredOrders)
	assert.True(t, decimal.RequireFromString("25").Equal(report.TotalDeliveredAmount))
	assert.Equal(t, 1, report.MalformedFields)
	require.Len(t, report.SoldProducts, 2)
	assert.Equal(t, 2, report.SoldProducts[0].QuantitySold)

	approx := BuildReport(orders, testInventory(), Approximate(1))
	assert.Equal(t, 1, approx.MalformedFields)
}

func TestBuildReport_Vazio(t *testing.T) {
	report := BuildReport(nil, nil, Exact())

	require.NotNil(t, report)
	assert.Empty(t, report.SoldProducts)
	assert.Empty(t, report.CanceledProducts)
	assert.NotNil(t, report.SoldProducts)
	assert.NotNil(t, report.CanceledProducts)
	assert.Zero(t, report.DistinctProductsSold)
	assert.True(t, report.TotalDeliveredAmount.IsZero())
	assert.True(t, report.TotalCanceledAmount.IsZero())
	assert.Zero(t, report.TotalOrders())
}

func TestPartitionOrders_DisjuntasEExaustivas(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusDelivered, domain.OrderStatusCanceled, domain.OrderStatusPending,
		"delivered", "Cancelled", "", "Devuelto",
	}

	orders := make([]domain.Order, 0, 50)
	for i := range 50 {
		orders = append(orders, order(i+1, "1", statuses[i%len(statuses)]))
	}

	delivered, canceled, pending := PartitionOrders(orders)

	assert.Equal(t, len(orders), len(delivered)+len(canceled)+len(pending))

	seen := make(map[int]int)
	for _, part := range [][]domain.Order{delivered, canceled, pending} {
		for _, o := range part {
			seen[o.ID]++
		}
	}
	assert.Len(t, seen, len(orders))
	for id, count := range seen {
		assert.Equal(t, 1, count, "pedido %d em mais de uma partição", id)
	}
}

func TestBuildReport_AcumulacaoExata(t *testing.T) {
	orders := []domain.Order{
		order(1, "18.50", domain.OrderStatusDelivered,
			item(1, "Leche Gloria", 3, "13.50"),
			item(2, "Galleta Oreo", 2, "4.00"),
		),
		order(2, "9", domain.OrderStatusDelivered,
			item(1, "Leche Gloria", 2, "9.00"),
		),
		order(3, "21", domain.OrderStatusCanceled,
			item(4, "Inca Kola", 3, "21.00"),
			item(2, "Galleta Oreo", 0, "0"),
		),
		order(4, "5", domain.OrderStatusDelivered,
			item(0, "leche gloria", 1, "4.50"),
			item(99, "Producto Nuevo", 4, "10.00"),
		),
		order(5, "7", domain.OrderStatusPending,
			item(5, "Detergente Ariel", 10, "129.00"),
		),
	}

	report := BuildReport(orders, testInventory(), Exact())

	require.Len(t, report.SoldProducts, 3)
	assert.Equal(t, 3, report.DistinctProductsSold)

	leche := report.SoldProducts[0]
	assert.Equal(t, 1, leche.ProductID)
	assert.Equal(t, "Leche Gloria", leche.ProductName)
	assert.Equal(t, 6, leche.QuantitySold)
	assert.True(t, decimal.RequireFromString("27").Equal(leche.Revenue))
	assert.True(t, decimal.RequireFromString("4.50").Equal(leche.UnitPrice))
	assert.False(t, leche.Estimated)

	// produto fora do inventário usa os dados da linha
	novo := report.SoldProducts[1]
	assert.Equal(t, 99, novo.ProductID)
	assert.Equal(t, "Producto Nuevo", novo.ProductName)
	assert.Equal(t, 4, novo.QuantitySold)
	assert.True(t, decimal.RequireFromString("2.5").Equal(novo.UnitPrice))

	assert.Equal(t, 2, report.SoldProducts[2].ProductID)

	require.Len(t, report.CanceledProducts, 1)
	assert.Equal(t, "Inca Kola", report.CanceledProducts[0].ProductName)
	assert.Equal(t, 3, report.CanceledProducts[0].QuantityCanceled)
	assert.True(t, decimal.RequireFromString("21").Equal(report.CanceledProducts[0].AmountNotCollected))
}

func TestBuildReport_CanceladosNuncaZerados(t *testing.T) {
	orders := []domain.Order{
		order(1, "0", domain.OrderStatusCanceled,
			item(1, "Leche Gloria", 0, "0"),
			item(2, "Galleta Oreo", -2, "0"),
		),
		order(2, "4", domain.OrderStatusCanceled,
			item(2, "Galleta Oreo", 2, "4"),
		),
	}

	report := BuildReport(orders, testInventory(), Exact())

	for _, stat := range report.CanceledProducts {
		assert.NotZero(t, stat.QuantityCanceled, stat.ProductName)
	}
	require.Len(t, report.CanceledProducts, 1)
	assert.Equal(t, 2, report.CanceledProducts[0].QuantityCanceled)
	assert.Equal(t, 1, report.MalformedFields)
}

func TestBuildReport_EmpateMantemOrdemDeEntrada(t *testing.T) {
	orders := []domain.Order{
		order(1, "10", domain.OrderStatusDelivered,
			item(4, "Inca Kola", 1, "7"),
			item(2, "Galleta Oreo", 1, "2"),
			item(1, "Leche Gloria", 1, "4.5"),
		),
	}

	report := BuildReport(orders, testInventory(), Exact())

	require.Len(t, report.SoldProducts, 3)
	assert.Equal(t, 4, report.SoldProducts[0].ProductID)
	assert.Equal(t, 2, report.SoldProducts[1].ProductID)
	assert.Equal(t, 1, report.SoldProducts[2].ProductID)
}

func TestBuildReport_Idempotente(t *testing.T) {
	orders := []domain.Order{
		order(1, "18.50", domain.OrderStatusDelivered, item(1, "Leche Gloria", 3, "13.50")),
		order(2, "21", domain.OrderStatusCanceled, item(4, "Inca Kola", 3, "21.00")),
		order(3, "abc", domain.OrderStatusPending),
	}

	policies := []EstimationPolicy{Exact(), Approximate(7)}
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			first := BuildReport(orders, testInventory(), policy)
			second := BuildReport(orders, testInventory(), policy)

			assert.Equal(t, first, second)
		})
	}
}

func TestBuildReport_Aproximado(t *testing.T) {
	orders := []domain.Order{
		order(1, "10", domain.OrderStatusDelivered),
		order(2, "10", domain.OrderStatusDelivered),
		order(3, "10", domain.OrderStatusDelivered),
		order(4, "10", domain.OrderStatusCanceled),
		order(5, "10", domain.OrderStatusCanceled),
		order(6, "10", domain.OrderStatusCanceled),
		order(7, "10", domain.OrderStatusCanceled),
	}

	report := BuildReport(orders, testInventory(), Approximate(42))

	assert.Equal(t, domain.ProvenanceEstimated, report.Provenance)
	require.Len(t, report.SoldProducts, 5)
	require.Len(t, report.CanceledProducts, 3)

	for _, stat := range report.SoldProducts {
		assert.True(t, stat.Estimated)
		assert.GreaterOrEqual(t, stat.QuantitySold, 1)
		assert.NotEqual(t, 3, stat.ProductID, "produto descontinuado não entra na estimativa")
		assert.True(t, stat.UnitPrice.Mul(decimal.NewFromInt(int64(stat.QuantitySold))).Round(2).Equal(stat.Revenue))
	}

	for _, stat := range report.CanceledProducts {
		assert.True(t, stat.Estimated)
		// floor(4 * 0.3) = 1
		assert.Equal(t, 1, stat.QuantityCanceled)
	}

	for i := 1; i < len(report.SoldProducts); i++ {
		assert.GreaterOrEqual(t, report.SoldProducts[i-1].QuantitySold, report.SoldProducts[i].QuantitySold)
	}
}

func TestBuildReport_AproximadoSemCancelados(t *testing.T) {
	orders := []domain.Order{order(1, "10", domain.OrderStatusDelivered)}

	report := BuildReport(orders, testInventory(), Approximate(1))

	assert.Empty(t, report.CanceledProducts)
	assert.Len(t, report.SoldProducts, 5)
}

func TestBuildReport_AproximadoDeterministico(t *testing.T) {
	orders := make([]domain.Order, 0, 40)
	for i := range 40 {
		orders = append(orders, order(i+1, "10", domain.OrderStatusDelivered))
	}

	quantities := func(r *domain.SalesReport) []int {
		q := make([]int, 0, len(r.SoldProducts))
		for _, s := range r.SoldProducts {
			q = append(q, s.QuantitySold)
		}
		return q
	}

	a := BuildReport(orders, testInventory(), Approximate(1))
	b := BuildReport(orders, testInventory(), Approximate(1))
	assert.Equal(t, quantities(a), quantities(b))

	// com base 40 e peso 0.8 a quantidade fica entre 48 e 96
	first := a.SoldProducts[0]
	for _, s := range a.SoldProducts {
		if s.ProductID == 1 {
			first = s
		}
	}
	assert.GreaterOrEqual(t, first.QuantitySold, 48)
	assert.LessOrEqual(t, first.QuantitySold, 96)
}

func TestParseEstimationPolicy(t *testing.T) {
	policy, err := ParseEstimationPolicy("approximate", 9)
	require.NoError(t, err)
	assert.Equal(t, Approximate(9), policy)

	policy, err = ParseEstimationPolicy("exact", 9)
	require.NoError(t, err)
	assert.Equal(t, Exact(), policy)

	_, err = ParseEstimationPolicy("random", 9)
	assert.ErrorIs(t, err, ErrInvalidEstimationMode)
}
