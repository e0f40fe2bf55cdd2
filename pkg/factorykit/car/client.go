package car

import (
	"context"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// family is both products of one brand, made by a single Factory.
type family struct {
	suv   SUV
	coupe Coupe
}

// Client orders products by brand key.
type Client struct {
	suvs     *factorykit.Dispatcher[Factory, SUV]
	coupes   *factorykit.Dispatcher[Factory, Coupe]
	families *factorykit.Dispatcher[Factory, family]
}

// NewClient creates a Client over a brand registry. Every product line
// shares the registry, so a brand registered once serves all of them.
func NewClient(brands *factorykit.Registry[Factory], opts ...factorykit.Option) *Client {
	return &Client{
		suvs: factorykit.NewDispatcher(brands, func(_ context.Context, f Factory, _ config.Config) (SUV, error) {
			return f.SUV(), nil
		}, opts...),
		coupes: factorykit.NewDispatcher(brands, func(_ context.Context, f Factory, _ config.Config) (Coupe, error) {
			return f.Coupe(), nil
		}, opts...),
		families: factorykit.NewDispatcher(brands, func(_ context.Context, f Factory, _ config.Config) (family, error) {
			return family{suv: f.SUV(), coupe: f.Coupe()}, nil
		}, opts...),
	}
}

// OrderSUV returns the SUV of brand.
func (c *Client) OrderSUV(ctx context.Context, brand string) (SUV, error) {
	return c.suvs.Dispatch(ctx, brand, config.Config{})
}

// OrderCoupe returns the Coupe of brand.
func (c *Client) OrderCoupe(ctx context.Context, brand string) (Coupe, error) {
	return c.coupes.Dispatch(ctx, brand, config.Config{})
}

// OrderFamily returns both products of brand. The brand is resolved once
// and both products come from that one Factory, even if brand is
// re-registered concurrently.
func (c *Client) OrderFamily(ctx context.Context, brand string) (SUV, Coupe, error) {
	f, err := c.families.Dispatch(ctx, brand, config.Config{})
	if err != nil {
		return nil, nil, err
	}
	return f.suv, f.coupe, nil
}
