package builder

import (
	"context"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// Client builds cars by brand key. Each build gets its own Director.
type Client struct {
	dispatcher *factorykit.Dispatcher[Builder, *Car]
}

// NewClient creates a Client over a builder registry.
func NewClient(builders *factorykit.Registry[Builder], opts ...factorykit.Option) *Client {
	return &Client{
		dispatcher: factorykit.NewDispatcher(builders, construct, opts...),
	}
}

func construct(_ context.Context, b Builder, _ config.Config) (*Car, error) {
	d := NewDirector()
	d.SetBuilder(b)
	return d.Construct()
}

// Build assembles the car of brand.
func (c *Client) Build(ctx context.Context, brand string) (*Car, error) {
	return c.BuildWith(ctx, brand, config.Config{})
}

// BuildWith assembles the car of brand, constructing its Builder with args.
func (c *Client) BuildWith(ctx context.Context, brand string, args config.Config) (*Car, error) {
	return c.dispatcher.Dispatch(ctx, brand, args)
}
