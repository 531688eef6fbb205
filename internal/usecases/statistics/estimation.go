package statistics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type EstimationMode string

const (
	EstimationExact       EstimationMode = "exact"
	EstimationApproximate EstimationMode = "approximate"
)

// EstimationPolicy define como as estatísticas por produto são calculadas.
// A escolha é sempre do chamador.
type EstimationPolicy struct {
	Mode EstimationMode
	Seed int64
}

func Exact() EstimationPolicy {
	return EstimationPolicy{Mode: EstimationExact}
}

func Approximate(seed int64) EstimationPolicy {
	return EstimationPolicy{Mode: EstimationApproximate, Seed: seed}
}

// ParseEstimationPolicy monta a política a partir da configuração
func ParseEstimationPolicy(mode string, seed int64) (EstimationPolicy, error) {
	switch EstimationMode(mode) {
	case EstimationExact:
		return Exact(), nil
	case EstimationApproximate:
		return Approximate(seed), nil
	default:
		return EstimationPolicy{}, fmt.Errorf("%w: %q", ErrInvalidEstimationMode, mode)
	}
}

func (p EstimationPolicy) String() string {
	if p.Mode == EstimationApproximate {
		return fmt.Sprintf("%s(%d)", p.Mode, p.Seed)
	}
	return string(EstimationExact)
}

// Pesos por posição no inventário: os primeiros produtos vendem mais
var estimatedSaleWeights = []float64{0.8, 0.6, 0.4, 0.3, 0.2}

const (
	estimatedCanceledProducts = 3
	estimatedCancelRate       = 0.3
)

// estimateProductStats gera uma aproximação das vendas por produto quando
// não há detalhe de pedidos. Usa apenas os produtos vigentes.
func estimateProductStats(
	deliveredOrders, canceledOrders int,
	inventory []domain.InventoryItem,
	seed int64,
) ([]domain.SoldProductStat, []domain.CanceledProductStat) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	active := make([]domain.InventoryItem, 0, len(inventory))
	for _, item := range inventory {
		if item.Active {
			active = append(active, item)
		}
	}

	baseSales := max(deliveredOrders, 1)

	sold := make([]domain.SoldProductStat, 0, len(estimatedSaleWeights))
	for i, item := range active {
		if i >= len(estimatedSaleWeights) {
			break
		}

		factor := 1.5 + rng.Float64()*1.5
		quantity := max(1, int(math.Floor(float64(baseSales)*estimatedSaleWeights[i]*factor)))

		sold = append(sold, domain.SoldProductStat{
			ProductID:    item.ID,
			ProductName:  item.Name,
			QuantitySold: quantity,
			Revenue:      item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
			UnitPrice:    item.UnitPrice,
			Estimated:    true,
		})
	}

	canceled := make([]domain.CanceledProductStat, 0, estimatedCanceledProducts)
	if canceledOrders == 0 {
		return sold, canceled
	}

	quantity := max(1, int(math.Floor(float64(canceledOrders)*estimatedCancelRate)))
	for i, item := range active {
		if i >= estimatedCanceledProducts {
			break
		}

		canceled = append(canceled, domain.CanceledProductStat{
			ProductID:          item.ID,
			ProductName:        item.Name,
			QuantityCanceled:   quantity,
			AmountNotCollected: item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
			Estimated:          true,
		})
	}

	return sold, canceled
}
