package builder

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
)

// Director assembles a Car from whichever Builder is bound to it.
// A Director is not safe for concurrent use.
type Director struct {
	builder Builder
}

// NewDirector returns a Director with no Builder bound.
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder binds b, replacing any previous binding.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// Construct asks the bound Builder for the body, the wheel and the engine,
// in that order and once each, and returns the assembled Car.
//
// Returns ErrNoBuilderBound if SetBuilder was never called, and a
// *factorykit.NotImplementedError if the Builder does not supply a part.
func (d *Director) Construct() (car *Car, err error) {
	if d.builder == nil {
		return nil, factorykit.ErrNoBuilderBound
	}

	defer func() {
		if r := recover(); r != nil {
			var nie *factorykit.NotImplementedError
			if e, ok := r.(error); ok && errors.As(e, &nie) {
				car, err = nil, fmt.Errorf("construct: %w", nie)
				return
			}
			panic(r)
		}
	}()

	car = NewCar().
		SetBody(d.builder.Body()).
		SetWheel(d.builder.Wheel()).
		SetEngine(d.builder.Engine())
	return car, nil
}
