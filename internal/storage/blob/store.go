// Package blob implements the key-value blob store that backs the demo
// data. It is the sole durability mechanism: JSON-encoded collections under
// fixed keys, no transactions, single-writer assumption.
package blob

// Fixed keys of the persisted state layout.
const (
	KeyOrders    = "demo_pedidos"
	KeyCustomers = "demo_clientes"
	KeyUser      = "demo_user"
	KeyToken     = "demo_token"
)

// Store is a key-value blob store. Absence of a key is not an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
