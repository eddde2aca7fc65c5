package model

// CustomerStatus describes account activity.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "activo"
	CustomerStatusInactive CustomerStatus = "inactivo"
)

// Customer describes a billable account with aggregate order history.
// TotalBilled and OrderCount are maintained incrementally at order creation.
type Customer struct {
	ID           string         `json:"id"`
	Name         string         `json:"nombre"`
	Address      string         `json:"direccion"`
	Notes        string         `json:"descripcion,omitempty"`
	Phone        string         `json:"telefono"`
	Email        string         `json:"email"`
	TotalBilled  float64        `json:"totalFacturado"`
	OrderCount   int            `json:"cantidadPedidos"`
	LastOrder    *Date          `json:"ultimoPedido"`
	RegisteredAt Date           `json:"fechaRegistro"`
	Status       CustomerStatus `json:"estado"`
}

// CustomerDraft carries caller-supplied fields for customer creation.
type CustomerDraft struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Notes   string `json:"descripcion,omitempty"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}

// CustomerPatch is a shallow partial update of customer fields. Aggregates
// are owned by the backend and cannot be patched.
type CustomerPatch struct {
	Name    *string         `json:"nombre,omitempty"`
	Address *string         `json:"direccion,omitempty"`
	Notes   *string         `json:"descripcion,omitempty"`
	Phone   *string         `json:"telefono,omitempty"`
	Email   *string         `json:"email,omitempty"`
	Status  *CustomerStatus `json:"estado,omitempty"`
}

// CustomerStats aggregates the customer collection.
type CustomerStats struct {
	TotalCustomers int       `json:"totalClientes"`
	TotalRevenue   float64   `json:"facturacionTotal"`
	AverageRevenue float64   `json:"promedioFacturacion"`
	TopCustomer    *Customer `json:"clienteTop"`
}
