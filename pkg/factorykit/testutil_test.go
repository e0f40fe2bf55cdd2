package factorykit

import (
	"context"
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// greeter is the Creator type used across the package tests.
type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

// named holds construction-time state.
type named struct{ name string }

func (n named) Greet() string { return "hello " + n.name }

func newEnglish(config.Config) greeter { return english{} }
func newFrench(config.Config) greeter  { return french{} }
func newNamed(args config.Config) greeter {
	return named{name: args.String("name", "stranger")}
}

func greet(_ context.Context, g greeter, _ config.Config) (string, error) {
	return g.Greet(), nil
}

func failingDrive(_ context.Context, g greeter, _ config.Config) (string, error) {
	return "", fmt.Errorf("cannot greet with %T", g)
}
