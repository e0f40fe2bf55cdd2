package benchmarks

import (
	"fmt"
	"testing"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/randalmurphal/factorykit/pkg/factorykit/document"
	"github.com/randalmurphal/factorykit/pkg/factorykit/registry"
)

// BenchmarkRegistry_Resolve measures a hit on a registry of 100 keys.
func BenchmarkRegistry_Resolve(b *testing.B) {
	r := registry.New[int]("numbers")
	for i := 0; i < 100; i++ {
		r.Register(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("key-50")
	}
}

// BenchmarkRegistry_ResolveMiss measures the KeyNotFound path.
func BenchmarkRegistry_ResolveMiss(b *testing.B) {
	r := registry.New[int]("numbers")
	r.Register("present", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("absent")
	}
}

// BenchmarkRegistry_ResolveParallel measures concurrent readers.
func BenchmarkRegistry_ResolveParallel(b *testing.B) {
	formats := document.NewRegistry()
	args := config.New(map[string]any{document.ArgFile: "report"})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = formats.ResolveWith("json", args)
		}
	})
}

// BenchmarkRegistry_Register measures overwriting one key.
func BenchmarkRegistry_Register(b *testing.B) {
	formats := factorykit.NewRegistry[document.Creator]("formats")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		formats.Register("json", document.NewJSONFile)
	}
}
