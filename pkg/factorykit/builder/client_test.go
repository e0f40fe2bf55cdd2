package builder_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/builder"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Build(t *testing.T) {
	client := builder.NewClient(builder.NewRegistry())

	car, err := client.Build(context.Background(), "Bmw")
	require.NoError(t, err)
	assert.Equal(t, "body: sedan, engine: 1000, wheel: 30", car.Describe())

	car, err = client.Build(context.Background(), "Benz")
	require.NoError(t, err)
	assert.Equal(t, "body: Suv, engine: 500, wheel: 22", car.Describe())
}

func TestClient_BuildWith(t *testing.T) {
	client := builder.NewClient(builder.NewRegistry())

	car, err := client.BuildWith(context.Background(), builder.BrandCustom, config.New(map[string]any{
		builder.ArgHP:   320,
		builder.ArgBody: "wagon",
	}))
	require.NoError(t, err)
	assert.Equal(t, "body: wagon, engine: 320, wheel: 16", car.Describe())

	car, err = client.Build(context.Background(), builder.BrandCustom)
	require.NoError(t, err)
	assert.Equal(t, "body: hatchback, engine: 150, wheel: 16", car.Describe())
}

func TestClient_UnknownBrand(t *testing.T) {
	builders := builder.NewRegistry()
	client := builder.NewClient(builders)

	car, err := client.Build(context.Background(), "unknown")
	assert.Nil(t, car)
	assert.ErrorIs(t, err, factorykit.ErrUnknownVariant)

	var knf *factorykit.KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "unknown", knf.Key)
	assert.Equal(t, []string{"Benz", "Bmw", "Custom"}, builders.Keys())
}

func TestClient_PartialBuilderSurfacesAsDispatchError(t *testing.T) {
	builders := builder.NewRegistry()
	builders.Register("Kit", func(config.Config) builder.Builder {
		return bodyOnly{builder.Unimplemented{Variant: "Kit"}}
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := builder.NewClient(builders, factorykit.WithLogger(logger))

	_, err := client.Build(context.Background(), "Kit")
	var de *factorykit.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Kit", de.Key)
	assert.ErrorIs(t, err, factorykit.ErrNotImplemented)
	assert.Contains(t, buf.String(), "Kit")
}
