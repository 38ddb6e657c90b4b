// Package http provides HTTP handlers and clients that stamp messages with
// an RFC 9110 Date header generated by package httpdt.
//
// Server Components:
//   - Wrap: middleware that adds Date to every response
//
// Client Components:
//   - Transport: RoundTripper that adds Date to outgoing requests
//   - NewClient: creates an http.Client using Transport
//
// Shared Components:
//   - Stamp: a cached Date value refreshed once per interval, for callers
//     that would rather not read the clock for every message
//
// # Basic Server Usage
//
//	handler := http.Wrap(myHandler)
//	nethttp.ListenAndServe(":8080", handler)
//
// # Basic Client Usage
//
//	client := http.NewClient()
//	resp, err := client.Get("https://example.com/api")
//
// # Sharing a Stamp
//
//	stamp := http.NewStamp()
//	go stamp.Run(ctx, time.Second)
//
//	handler := http.Wrap(myHandler, http.WithStamp(stamp))
//	client := http.NewClient(http.WithStamp(stamp))
//
// When the clock cannot produce a time at or after the Unix epoch, no Date
// header is sent, the failure is logged through log/slog, and the handler
// registered with WithClockErrorHandler, if any, is called.
package http
