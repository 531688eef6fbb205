package backend

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/backendclient"
	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type BackendIntegrator interface {
	FetchOrderHistory(ctx context.Context) ([]domain.Order, error)
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
	FetchClientByDNI(ctx context.Context, dni string) (*domain.Client, error)
}

type BackendService struct {
	Client backendclient.Client
}

func New(client backendclient.Client) BackendIntegrator {
	return &BackendService{
		Client: client,
	}
}

func (s *BackendService) FetchOrderHistory(ctx context.Context) ([]domain.Order, error) {
	resp, err := s.Client.GetOrderHistory(ctx)
	if err != nil {
		return nil, err
	}

	return toOrders(resp), nil
}

func (s *BackendService) FetchInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	resp, err := s.Client.GetInventory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(resp))
	for _, product := range resp {
		price, ok := utils.ParseAmount(product.Price.String())
		if !ok {
			logrus.WithField("product_id", product.ID).Debugf("Preço inválido no inventário: %q", product.Price)
			price = decimal.Zero
		}

		items = append(items, domain.InventoryItem{
			ID:           product.ID,
			Name:         product.Name,
			Description:  product.Description,
			UnitPrice:    price,
			Stock:        product.Stock,
			Active:       strings.EqualFold(strings.TrimSpace(product.Status), backenddomain.ProductStatusActive),
			CategoryID:   product.CategoryID,
			CategoryName: product.CategoryName,
		})
	}

	return items, nil
}

func (s *BackendService) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	resp, err := s.Client.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(resp))
	for _, category := range resp {
		categories = append(categories, domain.Category{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	return categories, nil
}

func (s *BackendService) FetchClientByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	resp, err := s.Client.GetClientByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, nil
	}

	return &domain.Client{
		ID:        resp.ID,
		DNI:       resp.DNI,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Address:   resp.Address,
		Phone:     resp.Phone,
		Email:     resp.Email,
		Orders:    toOrders(resp.Orders),
	}, nil
}

func toOrders(resp []backenddomain.Order) []domain.Order {
	orders := make([]domain.Order, 0, len(resp))
	for _, order := range resp {
		var malformed int
		readInt := func(raw backenddomain.RawInt) int {
			value, ok := raw.Int()
			if !ok {
				malformed++
			}
			return value
		}

		items := make([]domain.LineItem, 0, len(order.Details))
		for _, detail := range order.Details {
			items = append(items, domain.LineItem{
				ID:          readInt(detail.ID),
				ProductID:   readInt(detail.ProductID),
				ProductName: detail.ProductName,
				Quantity:    readInt(detail.Quantity),
				Subtotal:    detail.Subtotal.String(),
				UnitPrice:   detail.UnitPrice.String(),
			})
		}

		orders = append(orders, domain.Order{
			ID:              readInt(order.ID),
			Date:            order.Date,
			Total:           order.Total.String(),
			Status:          domain.NormalizeStatus(order.Status),
			Items:           items,
			MalformedFields: malformed,
		})
	}

	return orders
}
