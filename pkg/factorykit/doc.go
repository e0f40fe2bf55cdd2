/*
Package factorykit provides an extensible creation registry: a mapping from
a string key to a Creator factory, populated during initialization and
consulted by client code to produce polymorphic Products without naming
concrete types.

# Overview

Three pieces cooperate:

  - Registry[C] binds keys to Factory[C] constructors. Register never
    fails and the last registration of a key wins. Resolve returns a fresh
    Creator or a *KeyNotFoundError.
  - A Creator is any interface whose implementations produce Products:
    one operation for a factory method, several correlated operations for
    an abstract factory, part operations for a builder.
  - Dispatcher[C, P] is the client: it resolves a Creator by key and
    drives it into a Product through a DriveFunc.

The document, car and builder subpackages are complete examples of the
three Creator styles.

# Basic Usage

	type Greeter interface{ Greet() string }

	reg := factorykit.NewRegistry[Greeter]("greeters")
	reg.Register("en", func(config.Config) Greeter { return english{} })
	reg.Register("fr", func(config.Config) Greeter { return french{} })

	d := factorykit.NewDispatcher(reg,
	    func(ctx context.Context, g Greeter, _ config.Config) (string, error) {
	        return g.Greet(), nil
	    })

	msg, err := d.Dispatch(ctx, "en", config.Config{})

# Construction Arguments

Creators that need construction-time state read it from the config.Config
passed to their factory:

	reg.Register("file", func(args config.Config) Greeter {
	    return fileGreeter{path: args.String("path", "")}
	})
	g, err := reg.ResolveWith("file", config.New(map[string]any{"path": "hi.txt"}))

# Adding Variants

A new variant needs only a Register call. Dispatchers hold a reference to
their Registry, so a variant registered after the Dispatcher was built is
dispatchable at once, with no client changes.

# Errors

  - *KeyNotFoundError (ErrKeyNotFound): Resolve of an unregistered key.
  - *UnknownVariantError (ErrUnknownVariant): the same miss as seen by a
    Dispatcher caller. It unwraps to the *KeyNotFoundError.
  - *DispatchError: the drive function failed.
  - ErrNoBuilderBound: builder.Director.Construct without a builder.
  - *NotImplementedError (ErrNotImplemented): a partial Creator was asked
    for an operation it does not provide.

Nothing is retried and no error is replaced by a default.

# Observability

The registry never logs. A Dispatcher can be given a logger, an
OpenTelemetry metrics recorder and a span manager:

	d := factorykit.NewDispatcher(reg, drive,
	    factorykit.WithLogger(slog.Default()),
	    factorykit.WithMetrics(observability.NewMetricsRecorder()),
	    factorykit.WithTracing(observability.NewSpanManager()))

Each dispatch gets a dispatch_id used in logs and spans.

# Thread Safety

Registry is safe for concurrent use: registration and resolution share a
single lock per registry. Dispatcher is safe for concurrent use when its
drive function is.
*/
package factorykit
