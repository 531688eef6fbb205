package domain

import "github.com/shopspring/decimal"

// Client é o cliente com o histórico de pedidos retornado pelo backend
type Client struct {
	ID        int     `json:"id,omitempty"`
	DNI       string  `json:"dni"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Orders    []Order `json:"orders"`
}

// ClientPurchaseProfile resume as compras de um cliente
type ClientPurchaseProfile struct {
	DNI             string          `json:"dni"`
	Name            string          `json:"name"`
	OrderCount      int             `json:"order_count"`
	TotalPurchases  decimal.Decimal `json:"total_purchases"`
	ProductsBought  []string        `json:"products_bought"`
	Categories      []string        `json:"categories"`
	ProductsSummary string          `json:"products_summary"`
	CategorySummary string          `json:"category_summary"`
}
