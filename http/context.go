package http

import (
	"context"
)

// Context key types for storing values in request context
type clockErrorKey struct{}

// WithClockError adds a clock error to the context.
func WithClockError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, clockErrorKey{}, err)
}

// ClockErrorFromContext retrieves the clock error recorded by the
// middleware when it could not generate a Date header.
func ClockErrorFromContext(ctx context.Context) error {
	if err, ok := ctx.Value(clockErrorKey{}).(error); ok {
		return err
	}
	return nil
}
