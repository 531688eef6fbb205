package backenddomain

const (
	ProductStatusActive       = "V"
	ProductStatusDiscontinued = "D"
)

// Product é o item do inventário administrativo (vigentes e descontinuados)
type Product struct {
	ID           int       `json:"ProductoCodigo"`
	Name         string    `json:"ProductoNombre"`
	Description  string    `json:"ProductoDescripcion,omitempty"`
	Price        RawAmount `json:"ProductoPrecio"`
	Stock        int       `json:"ProductoCantidad"`
	Photo        string    `json:"ProductoFoto,omitempty"`
	Status       string    `json:"ProductoEstado"`
	Category     string    `json:"Categoria,omitempty"`
	CategoryName string    `json:"CategoriaNombre,omitempty"`
	CategoryID   int       `json:"Producto_TipoProductoCodigo,omitempty"`
}

type Category struct {
	ID   int    `json:"TipoProductoCodigo"`
	Name string `json:"TipoProductoNombre"`
}
