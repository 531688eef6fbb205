package backendclient

import (
	"context"
	"net/http"

	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	GetOrderHistory(ctx context.Context) ([]backenddomain.Order, error)
	GetInventory(ctx context.Context) ([]backenddomain.Product, error)
	GetCategories(ctx context.Context) ([]backenddomain.Category, error)
	// GetClientByDNI retorna nil, nil quando o backend responde 404
	GetClientByDNI(ctx context.Context, dni string) (*backenddomain.Client, error)
}

type BackendClient struct {
	httpClient *http.Client
	baseURL    string
	token      *ServiceToken
}

// NewClient cria o cliente da API do backend
func NewClient(cfg *config.Config) Client {
	return &BackendClient{
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		baseURL: cfg.Backend.URL,
		token:   NewServiceToken(cfg.Backend.ServiceSecret, cfg.Backend.ServiceSubject, cfg.Backend.TokenTTL),
	}
}
