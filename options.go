package httpdt

import (
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

// NewOption configures how New and Datetime.Now read the clock.
type NewOption interface {
	Option
	newOption()
}

type newOption struct {
	Option
}

func (newOption) newOption() {}

// WithClock returns a NewOption that sets the clock to read.
// The default is SystemClock.
func WithClock(clock Clock) NewOption {
	return newOption{option.New(identClock{}, clock)}
}

type identClock struct{}

func (identClock) String() string { return "WithClock" }
