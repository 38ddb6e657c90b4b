package http

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lestrrat-go/httpdt"
)

// Stamp caches the current Date header value so that busy servers and
// clients read the clock once per interval instead of once per message.
// Readers never block; Refresh publishes a new snapshot without touching
// the one readers may still hold. Use NewStamp to create one.
type Stamp struct {
	clock   Clock
	logger  *slog.Logger
	current atomic.Pointer[stamped]
}

type stamped struct {
	dt     httpdt.Datetime
	header string
	err    error
}

// NewStamp creates a Stamp and performs the first clock read.
// A failed first read is reported by Header until a Refresh succeeds.
func NewStamp(options ...StampOption) *Stamp {
	s := &Stamp{
		clock:  httpdt.SystemClock{},
		logger: slog.Default(),
	}

	for _, option := range options {
		switch option.Ident() {
		case identClock{}:
			s.clock, _ = option.Value().(Clock)
		case identLogger{}:
			if logger, ok := option.Value().(*slog.Logger); ok && logger != nil {
				s.logger = logger
			}
		}
	}

	s.current.Store(render(httpdt.Epoch().Now(httpdt.WithClock(s.clock))))
	return s
}

func render(dt httpdt.Datetime, err error) *stamped {
	if err != nil {
		return &stamped{dt: dt, err: err}
	}
	return &stamped{dt: dt, header: dt.ForHeader()}
}

// Refresh reads the clock and publishes the result. While the clock is
// unavailable Header returns the error rather than a stale value.
func (s *Stamp) Refresh() error {
	prev := s.current.Load()
	dt, err := prev.dt.Now(httpdt.WithClock(s.clock))
	if err == nil && prev.err == nil && dt.Equal(prev.dt) {
		// same second: the published rendering is still current
		return nil
	}
	if err != nil {
		dt = prev.dt
	}
	s.current.Store(render(dt, err))
	return err
}

// Header returns the cached Date header value.
func (s *Stamp) Header() (string, error) {
	cur := s.current.Load()
	if cur.err != nil {
		return "", cur.err
	}
	return cur.header, nil
}

// Datetime returns the cached snapshot.
func (s *Stamp) Datetime() (httpdt.Datetime, error) {
	cur := s.current.Load()
	if cur.err != nil {
		return httpdt.Datetime{}, cur.err
	}
	return cur.dt, nil
}

// Run refreshes the Stamp every interval until ctx is done. Clock failures
// are logged and do not stop the loop. A non-positive interval is an error.
func (s *Stamp) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("non-positive refresh interval %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Refresh(); err != nil {
				s.logger.WarnContext(ctx, "failed to refresh Date header", slog.String("error", err.Error()))
			}
		}
	}
}
