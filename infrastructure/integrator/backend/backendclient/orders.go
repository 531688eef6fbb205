package backendclient

import (
	"context"

	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
)

const orderHistoryPath = "/pedidos/historial"

func (c *BackendClient) GetOrderHistory(ctx context.Context) ([]backenddomain.Order, error) {
	var orders []backenddomain.Order

	if err := c.get(ctx, "pedidos", orderHistoryPath, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
