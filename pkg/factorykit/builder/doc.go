// Package builder is the builder use of factorykit.
//
// A Builder supplies the parts of a Car. A Director owns the assembly
// order: body, then wheel, then engine, each exactly once. Builders are
// registered by brand and a Client builds by brand key through a fresh
// Director, so adding a brand is one Register call.
//
//	client := builder.NewClient(builder.NewRegistry())
//	car, err := client.Build(ctx, "Bmw")
//	// car.Describe() == "body: sedan, engine: 1000, wheel: 30"
package builder
