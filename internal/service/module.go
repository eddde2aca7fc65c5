package service

import "go.uber.org/fx"

// Module provides the service layer to the fx container.
var Module = fx.Provide(
	NewOrderService,
	NewCustomerService,
	NewAuthService,
	NewContactService,
)
