package http

import (
	"log/slog"
	"net/http"
)

// DateHeader is the canonical name of the header this package sets.
const DateHeader = "Date"

// Middleware wraps an http.Handler to add a Date header to its responses.
type Middleware struct {
	handler http.Handler
	dater
}

// Wrap wraps an HTTP handler so that every response carries a Date header.
//
// The header is set before the handler runs, so the handler and any
// middleware it calls (a response signer covering "date", for example) see
// the same value that is sent. A Date already present on the response is
// kept, and a handler may still replace it.
//
// When the clock is unavailable the header is omitted, as RFC 9110
// requires of a server without a usable clock, the failure is logged, and
// the error is recorded on the request context for ClockErrorFromContext.
func Wrap(h http.Handler, options ...MiddlewareOption) http.Handler {
	w := &Middleware{
		handler: h,
		dater:   newDater(),
	}

	for _, opt := range options {
		w.apply(opt)
	}

	return w
}

// ServeHTTP implements http.Handler.
func (wrp *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hdr := w.Header()
	if hdr.Get(DateHeader) == "" {
		v, err := wrp.header()
		if err != nil {
			wrp.omit(r.Context(), err,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			r = r.WithContext(WithClockError(r.Context(), err))
		} else {
			hdr.Set(DateHeader, v)
		}
	}

	wrp.handler.ServeHTTP(w, r)
}
