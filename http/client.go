package http

import (
	"log/slog"
	"net/http"
)

// Transport is an http.RoundTripper that adds a Date header to outgoing
// requests that do not already carry one.
type Transport struct {
	// Transport is the underlying RoundTripper.
	// If nil, http.DefaultTransport is used.
	Transport http.RoundTripper

	dater
}

// NewTransport creates a new Transport with the given configuration.
func NewTransport(options ...TransportOption) *Transport {
	t := &Transport{
		Transport: http.DefaultTransport,
		dater:     newDater(),
	}

	for _, opt := range options {
		if t.apply(opt) {
			continue
		}
		switch opt.Ident() {
		case identTransport{}:
			t.Transport, _ = opt.Value().(http.RoundTripper)
		}
	}

	return t
}

// RoundTrip implements http.RoundTripper by stamping the request before
// sending it. The caller's request is never modified. If the clock is
// unavailable the request is sent without a Date header.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(DateHeader) == "" {
		v, err := t.header()
		if err != nil {
			t.omit(req.Context(), err,
				slog.String("method", req.Method),
				slog.String("url", req.URL.Redacted()),
			)
		} else {
			// Clone the request to avoid modifying the original
			clone := req.Clone(req.Context())
			clone.Header.Set(DateHeader, v)
			req = clone
		}
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return transport.RoundTrip(req)
}

// NewClient creates an http.Client whose requests carry a Date header.
func NewClient(options ...TransportOption) *http.Client {
	return &http.Client{
		Transport: NewTransport(options...),
	}
}
