// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type OrderStatus string

const (
	OrderStatusDelivered OrderStatus = "Entregado"
	OrderStatusCanceled  OrderStatus = "Cancelado"
	OrderStatusPending   OrderStatus = "Pendiente"
)

// Aliases aceitos pelo backend para cada status
var orderStatusAliases = map[string]OrderStatus{
	"entregado": OrderStatusDelivered,
	"delivered": OrderStatusDelivered,
	"cancelado": OrderStatusCanceled,
	"canceled":  OrderStatusCanceled,
	"cancelled": OrderStatusCanceled,
	"pendiente": OrderStatusPending,
	"pending":   OrderStatusPending,
}

// NormalizeStatus converte o status recebido do backend em um dos três
// status conhecidos. Qualquer valor desconhecido é tratado como pendente.
func NormalizeStatus(raw string) OrderStatus {
	if status, ok := orderStatusAliases[utils.NormalizeText(raw)]; ok {
		return status
	}
	return OrderStatusPending
}

// Order representa um pedido do histórico. Total é mantido como texto bruto
// porque o backend nem sempre envia um valor numérico.
type Order struct {
	ID     int         `json:"id"`
	Date   string      `json:"date,omitempty"`
	Total  string      `json:"total"`
	Status OrderStatus `json:"status"`
	Items  []LineItem  `json:"items,omitempty"`

	// MalformedFields conta os campos inteiros que chegaram inválidos do
	// backend e foram lidos como zero
	MalformedFields int `json:"-"`
}

// LineItem é uma linha de detalhe do pedido
type LineItem struct {
	ID          int    `json:"id,omitempty"`
	ProductID   int    `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
	UnitPrice   string `json:"unit_price,omitempty"`
}
