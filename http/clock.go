package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/lestrrat-go/httpdt"
)

// Clock provides the current time for Date header generation.
type Clock = httpdt.Clock

// FixedClock returns a Clock that always returns the same time.
// This is useful for testing to ensure deterministic Date headers.
func FixedClock(t time.Time) Clock {
	return httpdt.FixedClock(t)
}

// header returns the value for a Date header, from the Stamp if one is
// configured and from a fresh clock read otherwise.
func (d *dater) header() (string, error) {
	if d.stamp != nil {
		return d.stamp.Header()
	}
	dt, err := httpdt.New(httpdt.WithClock(d.clock))
	if err != nil {
		return "", err
	}
	return dt.ForHeader(), nil
}

// omit reports that a Date header could not be generated.
func (d *dater) omit(ctx context.Context, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	d.logger.LogAttrs(ctx, slog.LevelWarn, "omitting Date header", attrs...)
	if d.errorHandler != nil {
		d.errorHandler(err)
	}
}
