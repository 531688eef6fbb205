package backenddomain

// Order é o pedido do histórico como o backend retorna
type Order struct {
	ID      RawInt      `json:"PedidoCodigo"`
	Date    string      `json:"Pedidofecha,omitempty"`
	Total   RawAmount   `json:"Pedidototal"`
	Status  string      `json:"PedidoEstado"`
	Details []OrderItem `json:"Detalles,omitempty"`
}

type OrderItem struct {
	ID          RawInt    `json:"DetallePedidoCodigo,omitempty"`
	ProductID   RawInt    `json:"DetallePedidoProductoCodigo,omitempty"`
	Quantity    RawInt    `json:"DetallePedidoCantidad"`
	Subtotal    RawAmount `json:"DetallePedidoSubtotal"`
	ProductName string    `json:"ProductoNombre,omitempty"`
	Description string    `json:"ProductoDescripcion,omitempty"`
	UnitPrice   RawAmount `json:"ProductoPrecio,omitempty"`
}
