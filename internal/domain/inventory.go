package domain

import "github.com/shopspring/decimal"

// InventoryItem representa um produto do inventário (vigente ou descontinuado)
type InventoryItem struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Stock        int             `json:"stock"`
	Active       bool            `json:"active"`
	CategoryID   int             `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
