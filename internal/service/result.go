// Package service wraps the API boundary into a uniform result envelope so
// presentation code never branches on raw errors. Failures keep the original
// error for status mapping and carry a user-facing Spanish message.
package service

import (
	"fmt"
	"log/slog"
)

// Result is the envelope every service call resolves to.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// Err preserves the underlying error for errors.Is at the HTTP layer.
	Err error `json:"-"`
}

// capture runs fn, folding panics and errors into a failed Result. translate
// maps known domain errors to user-facing messages.
func capture[T any](logger *slog.Logger, op string, translate func(error) string, fn func() (T, error)) Result[T] {
	var (
		data T
		err  error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("unexpected failure",
					slog.String("op", op),
					slog.Any("reason", r),
				)
				err = fmt.Errorf("%s: %v", op, r)
			}
		}()
		data, err = fn()
	}()
	if err != nil {
		return Result[T]{Error: translate(err), Err: err}
	}
	return Result[T]{Success: true, Data: data}
}
