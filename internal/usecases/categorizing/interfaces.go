package categorizing

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// ClientSource define as leituras de clientes, inventário e categorias no backend.
// FetchClientByDNI retorna nil, nil quando o cliente não existe.
type ClientSource interface {
	FetchClientByDNI(ctx context.Context, dni string) (*domain.Client, error)
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
}

type ProfileService interface {
	// BuildClientProfile monta o resumo de compras do cliente pelo DNI
	BuildClientProfile(ctx context.Context, dni string) (*domain.ClientPurchaseProfile, error)
}
