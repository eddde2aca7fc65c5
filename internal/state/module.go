package state

import "go.uber.org/fx"

// Module provides the session-local state managers to the fx container.
var Module = fx.Provide(
	NewOrdersManager,
	NewCustomersManager,
)
