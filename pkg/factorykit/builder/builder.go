package builder

import (
	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// Brand keys of the built-in builders.
const (
	BrandBenz   = "Benz"
	BrandBmw    = "Bmw"
	BrandCustom = "Custom"
)

// Construction arguments read by the Custom builder.
const (
	ArgHP    = "hp"
	ArgWheel = "wheel"
	ArgBody  = "body"
)

// Builder supplies the parts of one kind of car.
type Builder interface {
	Engine() Engine
	Wheel() Wheel
	Body() Body
}

// Benz builds a 500hp Suv on 22in wheels.
type Benz struct{}

var _ Builder = Benz{}

func (Benz) Engine() Engine { return Engine{HP: 500} }
func (Benz) Wheel() Wheel   { return Wheel{Size: 22} }
func (Benz) Body() Body     { return Body{Shape: "Suv"} }

// Bmw builds a 1000hp sedan on 30in wheels.
type Bmw struct{}

var _ Builder = Bmw{}

func (Bmw) Engine() Engine { return Engine{HP: 1000} }
func (Bmw) Wheel() Wheel   { return Wheel{Size: 30} }
func (Bmw) Body() Body     { return Body{Shape: "sedan"} }

// Custom builds whatever its construction arguments ask for.
type Custom struct {
	hp    int
	wheel int
	body  string
}

var _ Builder = Custom{}

// NewCustom is the Factory for Custom. Missing arguments default to a
// 150hp hatchback on 16in wheels.
func NewCustom(args config.Config) Builder {
	return Custom{
		hp:    args.Int(ArgHP, 150),
		wheel: args.Int(ArgWheel, 16),
		body:  args.String(ArgBody, "hatchback"),
	}
}

func (c Custom) Engine() Engine { return Engine{HP: c.hp} }
func (c Custom) Wheel() Wheel   { return Wheel{Size: c.wheel} }
func (c Custom) Body() Body     { return Body{Shape: c.body} }

// Unimplemented can be embedded by a Builder that only supplies some
// parts. Every method panics with a *factorykit.NotImplementedError, which
// Director.Construct turns into an error.
type Unimplemented struct {
	Variant string
}

var _ Builder = Unimplemented{}

func (u Unimplemented) Engine() Engine { panic(u.missing("Engine")) }
func (u Unimplemented) Wheel() Wheel   { panic(u.missing("Wheel")) }
func (u Unimplemented) Body() Body     { panic(u.missing("Body")) }

func (u Unimplemented) missing(op string) *factorykit.NotImplementedError {
	return &factorykit.NotImplementedError{Variant: u.Variant, Op: op}
}

// NewRegistry returns a builder registry with Benz, Bmw and Custom registered.
func NewRegistry() *factorykit.Registry[Builder] {
	reg := factorykit.NewRegistry[Builder]("builders")
	RegisterBuiltins(reg)
	return reg
}

// RegisterBuiltins registers the Benz, Bmw and Custom builders.
func RegisterBuiltins(reg *factorykit.Registry[Builder]) {
	reg.RegisterMany(map[string]factorykit.Factory[Builder]{
		BrandBenz:   func(config.Config) Builder { return Benz{} },
		BrandBmw:    func(config.Config) Builder { return Bmw{} },
		BrandCustom: NewCustom,
	})
}
