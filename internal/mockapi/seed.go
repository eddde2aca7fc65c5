package mockapi

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
	"github.com/SanTaClouse/verduleria-luna/internal/storage/blob"
)

// Demo users available in the stand-alone build.
var seedUsers = []model.User{
	{ID: "1", Username: "demo", Name: "Usuario Demo", Email: "demo@verdluna.com", Role: "admin"},
	{ID: "2", Username: "vendedor", Name: "Vendedor Demo", Email: "vendedor@verdluna.com", Role: "vendedor"},
}

type credential struct {
	username     string
	passwordHash string
}

// Valid demo credentials. Hashed at startup so the allow-list check goes
// through the regular password comparison path.
var seedCredentials = buildCredentials()

func buildCredentials() []credential {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	plain := []struct {
		username string
		password string
	}{
		{"demo", "demo123"},
		{"vendedor", "vendedor123"},
	}
	creds := make([]credential, 0, len(plain))
	for _, p := range plain {
		hash, err := hasher.Hash(p.password)
		if err != nil {
			panic(err)
		}
		creds = append(creds, credential{username: p.username, passwordHash: hash})
	}
	return creds
}

func date(year int, month time.Month, day int) model.Date {
	return model.NewDate(year, month, day)
}

func datePtr(year int, month time.Month, day int) *model.Date {
	d := date(year, month, day)
	return &d
}

var seedCustomers = []model.Customer{
	{
		ID: "1", Name: "Restaurant El Buen Sabor", Address: "Av. Principal 123, Centro",
		Notes: "Restaurant especializado en comida tradicional", Phone: "555-0101",
		Email: "contacto@elbuensabor.com", TotalBilled: 45800, OrderCount: 12,
		LastOrder: datePtr(2024, time.December, 8), RegisteredAt: date(2024, time.January, 15),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "2", Name: "Panadería La Espiga Dorada", Address: "Calle Comercio 456",
		Notes: "Panadería artesanal con más de 20 años", Phone: "555-0102",
		Email: "info@espigarada.com", TotalBilled: 38500, OrderCount: 15,
		LastOrder: datePtr(2024, time.December, 7), RegisteredAt: date(2024, time.February, 10),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "3", Name: "Supermercado Los Andes", Address: "Av. Los Andes 789",
		Notes: "Supermercado de barrio", Phone: "555-0103",
		Email: "gerencia@losandes.com", TotalBilled: 62300, OrderCount: 18,
		LastOrder: datePtr(2024, time.December, 9), RegisteredAt: date(2024, time.January, 5),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "4", Name: "Café Literario", Address: "Plaza Central 12",
		Notes: "Cafetería con ambiente cultural", Phone: "555-0104",
		Email: "cafe@literario.com", TotalBilled: 28900, OrderCount: 9,
		LastOrder: datePtr(2024, time.December, 5), RegisteredAt: date(2024, time.March, 20),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "5", Name: "Hotel Bella Vista", Address: "Malecón 234",
		Notes: "Hotel boutique frente al mar", Phone: "555-0105",
		Email: "reservas@bellavista.com", TotalBilled: 52400, OrderCount: 11,
		LastOrder: datePtr(2024, time.December, 6), RegisteredAt: date(2024, time.February, 28),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "6", Name: "Pastelería Sweet Dreams", Address: "Calle Dulces 567",
		Notes: "Especialistas en pasteles y postres", Phone: "555-0106",
		Email: "pedidos@sweetdreams.com", TotalBilled: 19800, OrderCount: 7,
		LastOrder: datePtr(2024, time.November, 28), RegisteredAt: date(2024, time.April, 15),
		Status: model.CustomerStatusActive,
	},
	{
		ID: "7", Name: "Bar La Esquina", Address: "Esquina Norte s/n",
		Phone: "555-0107", Email: "bar@laesquina.com", TotalBilled: 8500, OrderCount: 3,
		LastOrder: datePtr(2024, time.October, 15), RegisteredAt: date(2024, time.May, 10),
		Status: model.CustomerStatusInactive,
	},
}

func snapshotOf(customerID string) model.CustomerSnapshot {
	for _, c := range seedCustomers {
		if c.ID == customerID {
			return model.CustomerSnapshot{ID: c.ID, Name: c.Name, Address: c.Address, Phone: c.Phone}
		}
	}
	return model.CustomerSnapshot{ID: customerID}
}

var (
	demoRef     = &model.UserRef{ID: "1", Username: "demo", Name: "Usuario Demo"}
	vendedorRef = &model.UserRef{ID: "2", Username: "vendedor", Name: "Vendedor Demo"}
)

var seedOrders = []model.Order{
	{
		ID: 1, CustomerID: "3", Customer: snapshotOf("3"),
		Description: "50kg Harina 0000, 20kg Azúcar, 10L Aceite Girasol",
		Price:       8500, AmountPaid: 8500, Status: model.OrderStatusPaid,
		Date:      date(2024, time.December, 9),
		CreatedAt: time.Date(2024, time.December, 9, 10, 30, 0, 0, time.UTC),
		WhatsappSent: true, CreatedBy: demoRef,
	},
	{
		ID: 2, CustomerID: "1", Customer: snapshotOf("1"),
		Description: "30kg Arroz, 15kg Fideos variados, 5L Salsa de tomate",
		Price:       4200, AmountPaid: 2000, Status: model.OrderStatusUnpaid,
		Date:      date(2024, time.December, 8),
		CreatedAt: time.Date(2024, time.December, 8, 14, 20, 0, 0, time.UTC),
		WhatsappSent: true, CreatedBy: demoRef,
	},
	{
		ID: 3, CustomerID: "2", Customer: snapshotOf("2"),
		Description: "100kg Harina leudante, 30kg Levadura fresca, 20L Leche",
		Price:       12500, AmountPaid: 12500, Status: model.OrderStatusPaid,
		Date:      date(2024, time.December, 7),
		CreatedAt: time.Date(2024, time.December, 7, 9, 15, 0, 0, time.UTC),
		WhatsappSent: true, CreatedBy: vendedorRef,
	},
	{
		ID: 4, CustomerID: "5", Customer: snapshotOf("5"),
		Description: "40kg Carne vacuna, 30kg Pollo, 20kg Pescado fresco",
		Price:       18900, AmountPaid: 10000, Status: model.OrderStatusUnpaid,
		Date:      date(2024, time.December, 6),
		CreatedAt: time.Date(2024, time.December, 6, 16, 45, 0, 0, time.UTC),
		WhatsappSent: true, CreatedBy: demoRef,
	},
	{
		ID: 5, CustomerID: "4", Customer: snapshotOf("4"),
		Description: "10kg Café en grano premium, 5kg Té variado, Dulces surtidos",
		Price:       6800, AmountPaid: 6800, Status: model.OrderStatusPaid,
		Date:      date(2024, time.December, 5),
		CreatedAt: time.Date(2024, time.December, 5, 11, 30, 0, 0, time.UTC),
		WhatsappSent: true, CreatedBy: demoRef,
	},
	{
		ID: 6, CustomerID: "3", Customer: snapshotOf("3"),
		Description: "80kg Arroz, 40kg Azúcar, 20L Aceite",
		Price:       9200, AmountPaid: 9200, Status: model.OrderStatusPaid,
		Date:      date(2024, time.December, 2),
		CreatedAt: time.Date(2024, time.December, 2, 10, 0, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 7, CustomerID: "1", Customer: snapshotOf("1"),
		Description: "25kg Carne, 15kg Verduras frescas, Condimentos",
		Price:       8900, AmountPaid: 0, Status: model.OrderStatusUnpaid,
		Date:      date(2024, time.November, 30),
		CreatedAt: time.Date(2024, time.November, 30, 15, 20, 0, 0, time.UTC),
	},
	{
		ID: 8, CustomerID: "2", Customer: snapshotOf("2"),
		Description: "50kg Harina integral, 15kg Miel, 10kg Frutos secos",
		Price:       7600, AmountPaid: 7600, Status: model.OrderStatusPaid,
		Date:      date(2024, time.November, 28),
		CreatedAt: time.Date(2024, time.November, 28, 8, 45, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 9, CustomerID: "5", Customer: snapshotOf("5"),
		Description: "60kg Carnes variadas, 30kg Pescados, Mariscos frescos",
		Price:       22400, AmountPaid: 22400, Status: model.OrderStatusPaid,
		Date:      date(2024, time.November, 25),
		CreatedAt: time.Date(2024, time.November, 25, 13, 0, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 10, CustomerID: "4", Customer: snapshotOf("4"),
		Description: "8kg Café especial, Pastelería variada, Leche y cremas",
		Price:       5400, AmountPaid: 3000, Status: model.OrderStatusUnpaid,
		Date:      date(2024, time.November, 22),
		CreatedAt: time.Date(2024, time.November, 22, 10, 15, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 11, CustomerID: "6", Customer: snapshotOf("6"),
		Description: "40kg Harina pastelera, 20kg Chocolate, Esencias y colorantes",
		Price:       11200, AmountPaid: 11200, Status: model.OrderStatusPaid,
		Date:      date(2024, time.November, 20),
		CreatedAt: time.Date(2024, time.November, 20, 9, 30, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 12, CustomerID: "3", Customer: snapshotOf("3"),
		Description: "Productos de limpieza variados, Papel higiénico, Jabones",
		Price:       5800, AmountPaid: 5800, Status: model.OrderStatusPaid,
		Date:      date(2024, time.November, 18),
		CreatedAt: time.Date(2024, time.November, 18, 14, 0, 0, 0, time.UTC),
		WhatsappSent: true,
	},
	{
		ID: 13, CustomerID: "1", Customer: snapshotOf("1"),
		Description: "Verduras frescas del día, Frutas de estación",
		Price:       3200, AmountPaid: 3200, Status: model.OrderStatusPaid,
		Date:      date(2024, time.November, 15),
		CreatedAt: time.Date(2024, time.November, 15, 11, 0, 0, 0, time.UTC),
		WhatsappSent: true,
	},
}

// ensureSeed writes the fixture collections on first use only.
func (b *Backend) ensureSeed() error {
	if _, ok, err := b.store.Get(blob.KeyOrders); err != nil {
		return err
	} else if !ok {
		if err := b.saveOrders(seedOrders); err != nil {
			return err
		}
	}
	if _, ok, err := b.store.Get(blob.KeyCustomers); err != nil {
		return err
	} else if !ok {
		if err := b.saveCustomers(seedCustomers); err != nil {
			return err
		}
	}
	return nil
}

// nextOrderID continues the monotonic counter after the highest stored id.
func nextOrderID(orders []model.Order) int64 {
	var max int64
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// nextCustomerID mirrors nextOrderID for the numeric string customer ids.
func nextCustomerID(customers []model.Customer) string {
	var max int64
	for _, c := range customers {
		if n, err := strconv.ParseInt(c.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}
