package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrFutureDate         = errors.New("date is in the future")
	ErrCustomerHasOrders  = errors.New("customer has existing orders")
	ErrInvalidInput       = errors.New("invalid input")
)
