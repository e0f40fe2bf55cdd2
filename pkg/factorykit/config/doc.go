/*
Package config carries construction arguments to Creator factories.

# Overview

A Creator that needs construction-time state (a file path, a size, a
flag) receives it as a Config: a read-only map[string]any with typed
accessors that fall back to a default when the key is missing or holds a
value of the wrong type. Zero-argument factories simply ignore it.

# Basic Usage

	args := config.New(map[string]any{
	    "file":   "report",
	    "indent": 2,
	})

	file := args.String("file", "")   // "report"
	indent := args.Int("indent", 4)   // 2
	width := args.Int("width", 80)    // 80, missing

Derive a Config with one more entry without touching the original:

	args = args.With("file", "summary")

The zero Config is valid and empty.

# Type Coercion

Int accepts int, int64, and float64 values; a float64 is accepted only
when it carries no fractional part, so numbers decoded from JSON work.

# File Loading

Arguments can be loaded from YAML or JSON:

	args, err := config.FromFile("args.yaml")
	args, err = config.FromYAML(yamlBytes)
	args, err = config.FromJSON(jsonBytes)
*/
package config
