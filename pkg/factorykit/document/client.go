package document

import (
	"context"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// Client edits files in a format chosen by key. It only knows the Creator
// and Document interfaces.
type Client struct {
	dispatcher *factorykit.Dispatcher[Creator, string]
}

// NewClient creates a Client over a format registry.
func NewClient(formats *factorykit.Registry[Creator], opts ...factorykit.Option) *Client {
	return &Client{
		dispatcher: factorykit.NewDispatcher(formats, edit, opts...),
	}
}

func edit(_ context.Context, c Creator, _ config.Config) (string, error) {
	return CallEdit(c), nil
}

// Edit resolves the Creator for format, constructed for file, and returns
// the result of CallEdit. An unregistered format fails with
// *factorykit.UnknownVariantError.
func (c *Client) Edit(ctx context.Context, format, file string) (string, error) {
	return c.dispatcher.Dispatch(ctx, format, config.New(nil).With(ArgFile, file))
}
