package builder

import (
	"fmt"
	"strings"
)

// Engine is the engine part.
type Engine struct {
	HP int
}

// Wheel is the wheel part.
type Wheel struct {
	Size int
}

// Body is the body part.
type Body struct {
	Shape string
}

// Car is the product assembled by a Director. The zero value is an empty
// car with no parts set. Once every part is set the Car is immutable and
// the setters panic.
type Car struct {
	body   *Body
	wheel  *Wheel
	engine *Engine
}

// NewCar returns an empty Car.
func NewCar() *Car {
	return &Car{}
}

// SetBody sets the body and returns the same Car for chaining.
func (c *Car) SetBody(b Body) *Car {
	c.mustBeOpen()
	c.body = &b
	return c
}

// SetWheel sets the wheel and returns the same Car for chaining.
func (c *Car) SetWheel(w Wheel) *Car {
	c.mustBeOpen()
	c.wheel = &w
	return c
}

// SetEngine sets the engine and returns the same Car for chaining.
func (c *Car) SetEngine(e Engine) *Car {
	c.mustBeOpen()
	c.engine = &e
	return c
}

func (c *Car) mustBeOpen() {
	if c.Complete() {
		panic("builder: car is already assembled")
	}
}

// Body returns the body and whether it was set.
func (c *Car) Body() (Body, bool) {
	if c.body == nil {
		return Body{}, false
	}
	return *c.body, true
}

// Wheel returns the wheel and whether it was set.
func (c *Car) Wheel() (Wheel, bool) {
	if c.wheel == nil {
		return Wheel{}, false
	}
	return *c.wheel, true
}

// Engine returns the engine and whether it was set.
func (c *Car) Engine() (Engine, bool) {
	if c.engine == nil {
		return Engine{}, false
	}
	return *c.engine, true
}

// Complete reports whether every part is set.
func (c *Car) Complete() bool {
	return c.body != nil && c.wheel != nil && c.engine != nil
}

// Describe lists the parts as "body: <shape>, engine: <hp>, wheel: <size>".
// Unset parts are shown as "-".
func (c *Car) Describe() string {
	parts := []string{"body: -", "engine: -", "wheel: -"}
	if c.body != nil {
		parts[0] = "body: " + c.body.Shape
	}
	if c.engine != nil {
		parts[1] = fmt.Sprintf("engine: %d", c.engine.HP)
	}
	if c.wheel != nil {
		parts[2] = fmt.Sprintf("wheel: %d", c.wheel.Size)
	}
	return strings.Join(parts, ", ")
}

// Spec returns the parts as a tree suitable for a document Encode.
func (c *Car) Spec() map[string]any {
	spec := make(map[string]any, 3)
	if c.body != nil {
		spec["body"] = c.body.Shape
	}
	if c.engine != nil {
		spec["engine"] = c.engine.HP
	}
	if c.wheel != nil {
		spec["wheel"] = c.wheel.Size
	}
	return spec
}
