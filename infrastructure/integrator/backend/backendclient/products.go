package backendclient

import (
	"context"

	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
)

const (
	// inventário administrativo: inclui produtos descontinuados
	inventoryPath  = "/productos/inventario"
	categoriesPath = "/productos/categorias"
)

func (c *BackendClient) GetInventory(ctx context.Context) ([]backenddomain.Product, error) {
	var products []backenddomain.Product

	if err := c.get(ctx, "inventário", inventoryPath, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *BackendClient) GetCategories(ctx context.Context) ([]backenddomain.Category, error) {
	var categories []backenddomain.Category

	if err := c.get(ctx, "categorias", categoriesPath, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
