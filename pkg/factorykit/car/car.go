package car

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// Brand keys of the built-in factories.
const (
	BrandBenz = "Benz"
	BrandBmw  = "Bmw"
)

// Product is what every car in a family shares.
type Product interface {
	// Family returns the brand that made the product.
	Family() string

	// Model returns the model name, e.g. "Gla".
	Model() string

	// Describe returns a human-readable line about the product.
	Describe() string
}

// SUV is the first product of a family.
type SUV interface {
	Product
}

// Coupe is the second product of a family.
type Coupe interface {
	Product
}

// Factory makes one family of products. Implementations must return
// products whose Family matches their own brand.
type Factory interface {
	SUV() SUV
	Coupe() Coupe
}

// model is embedded by the concrete products.
type model struct {
	family string
	name   string
	kind   string
}

func (m model) Family() string { return m.family }
func (m model) Model() string  { return m.name }

func (m model) Describe() string {
	return fmt.Sprintf("this is your %s %s %s...", m.kind, strings.ToLower(m.family), m.name)
}

// NewRegistry returns a brand registry with Benz and Bmw registered.
func NewRegistry() *factorykit.Registry[Factory] {
	reg := factorykit.NewRegistry[Factory]("brands")
	RegisterBuiltins(reg)
	return reg
}

// RegisterBuiltins registers the Benz and Bmw factories.
func RegisterBuiltins(reg *factorykit.Registry[Factory]) {
	reg.RegisterMany(map[string]factorykit.Factory[Factory]{
		BrandBenz: func(config.Config) Factory { return Benz{} },
		BrandBmw:  func(config.Config) Factory { return Bmw{} },
	})
}
