package backenddomain

type Client struct {
	ID        int     `json:"ClienteCodigo,omitempty"`
	DNI       string  `json:"ClienteDni"`
	FirstName string  `json:"ClienteNombre"`
	LastName  string  `json:"ClienteApellidos"`
	Address   string  `json:"ClienteDireccion,omitempty"`
	Phone     string  `json:"ClienteTelefono,omitempty"`
	Email     string  `json:"ClienteEmail,omitempty"`
	Orders    []Order `json:"Pedidos"`
}
