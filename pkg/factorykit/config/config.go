package config

import (
	"maps"
	"slices"
)

// Config holds the construction arguments handed to a Factory.
//
// The zero value is an empty, usable Config. Accessors never fail: a
// missing key or a value of the wrong type yields the supplied default.
// Values are never modified in place; With and Merge return copies.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// With returns a copy of c with key set to value.
func (c Config) With(key string, value any) Config {
	data := make(map[string]any, len(c.data)+1)
	maps.Copy(data, c.data)
	data[key] = value
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
func (c Config) Int(key string, defaultVal int) int {
	switch val := c.data[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Merge returns a copy of c overlaid with other. Keys in other win.
func (c Config) Merge(other Config) Config {
	data := make(map[string]any, len(c.data)+len(other.data))
	maps.Copy(data, c.data)
	maps.Copy(data, other.data)
	return Config{data: data}
}

// Keys returns the keys in sorted order.
func (c Config) Keys() []string {
	return slices.Sorted(maps.Keys(c.data))
}

// Has reports whether key is set.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Len returns the number of entries.
func (c Config) Len() int {
	return len(c.data)
}
