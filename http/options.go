package http

import (
	"log/slog"
	"net/http"

	"github.com/lestrrat-go/httpdt"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

// Identifier types for options
type identClock struct{}

func (identClock) String() string { return "WithClock" }

type identLogger struct{}

func (identLogger) String() string { return "WithLogger" }

type identStamp struct{}

func (identStamp) String() string { return "WithStamp" }

type identClockErrorHandler struct{}

func (identClockErrorHandler) String() string { return "WithClockErrorHandler" }

type identTransport struct{}

func (identTransport) String() string { return "WithTransport" }

// MiddlewareOption configures the handler returned by Wrap.
type MiddlewareOption interface {
	Option
	middlewareOption()
}

// TransportOption configures a Transport.
type TransportOption interface {
	Option
	transportOption()
}

// StampOption configures a Stamp.
type StampOption interface {
	Option
	stampOption()
}

// MiddlewareTransportOption can be used with both Wrap and NewTransport.
type MiddlewareTransportOption interface {
	MiddlewareOption
	TransportOption
}

// GlobalOption can be used with Wrap, NewTransport and NewStamp.
type GlobalOption interface {
	MiddlewareTransportOption
	StampOption
}

type globalOption struct {
	Option
}

func (globalOption) middlewareOption() {}
func (globalOption) transportOption()  {}
func (globalOption) stampOption()      {}

type middlewareTransportOption struct {
	Option
}

func (middlewareTransportOption) middlewareOption() {}
func (middlewareTransportOption) transportOption()  {}

type transportOption struct {
	Option
}

func (transportOption) transportOption() {}

// WithClock sets the clock that Date headers are generated from.
// The default is httpdt.SystemClock.
func WithClock(clock Clock) GlobalOption {
	return globalOption{option.New(identClock{}, clock)}
}

// WithLogger sets the logger that clock failures are reported to.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) GlobalOption {
	return globalOption{option.New(identLogger{}, logger)}
}

// WithStamp makes Date headers come from a shared Stamp instead of a
// clock read per message. WithClock is ignored when a Stamp is given.
func WithStamp(stamp *Stamp) MiddlewareTransportOption {
	return middlewareTransportOption{option.New(identStamp{}, stamp)}
}

// WithClockErrorHandler registers a function that is called whenever a
// Date header is omitted because the clock was unavailable.
func WithClockErrorHandler(handler func(error)) MiddlewareTransportOption {
	return middlewareTransportOption{option.New(identClockErrorHandler{}, handler)}
}

// WithTransport sets the underlying transport.
func WithTransport(transport http.RoundTripper) TransportOption {
	return transportOption{option.New(identTransport{}, transport)}
}

// dater holds the configuration shared by the middleware and the transport.
type dater struct {
	clock        Clock
	stamp        *Stamp
	logger       *slog.Logger
	errorHandler func(error)
}

func newDater() dater {
	return dater{
		clock:  httpdt.SystemClock{},
		logger: slog.Default(),
	}
}

// apply consumes the options understood by dater. It reports whether
// option was one of them.
func (d *dater) apply(option Option) bool {
	switch option.Ident() {
	case identClock{}:
		d.clock, _ = option.Value().(Clock)
	case identStamp{}:
		d.stamp, _ = option.Value().(*Stamp)
	case identLogger{}:
		if logger, ok := option.Value().(*slog.Logger); ok && logger != nil {
			d.logger = logger
		}
	case identClockErrorHandler{}:
		d.errorHandler, _ = option.Value().(func(error))
	default:
		return false
	}
	return true
}
