package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
)

// extensionAliases maps file extensions that differ from their format key.
var extensionAliases = map[string]string{
	"yml": FormatYAML,
}

// FormatFromPath derives a format key from a file extension.
// The key is not checked against any registry.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s: no extension", path)
	}
	if alias, ok := extensionAliases[ext]; ok {
		return alias, nil
	}
	return ext, nil
}

// Converter adapts documents between registered formats: the source
// format's Document decodes and the target format's Document encodes.
type Converter struct {
	formats *factorykit.Registry[Creator]
}

// NewConverter creates a Converter over a format registry.
func NewConverter(formats *factorykit.Registry[Creator]) *Converter {
	return &Converter{formats: formats}
}

// Convert re-renders data from one format in another.
// Unregistered formats fail with *factorykit.UnknownVariantError.
func (c *Converter) Convert(from, to string, data []byte) ([]byte, error) {
	src, err := c.document(from)
	if err != nil {
		return nil, err
	}
	dst, err := c.document(to)
	if err != nil {
		return nil, err
	}

	tree, err := src.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	out, err := dst.Encode(tree)
	if err != nil {
		return nil, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	return out, nil
}

// ConvertFile reads path, detects its format from the extension and
// converts it to the target format.
func (c *Converter) ConvertFile(path, to string) ([]byte, error) {
	from, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c.Convert(from, to, data)
}

// Decode parses data in the given format.
func (c *Converter) Decode(format string, data []byte) (map[string]any, error) {
	doc, err := c.document(format)
	if err != nil {
		return nil, err
	}
	return doc.Decode(data)
}

func (c *Converter) document(format string) (Document, error) {
	creator, err := c.formats.Resolve(format)
	if err != nil {
		return nil, &factorykit.UnknownVariantError{Key: format, Err: err}
	}
	return creator.Make(), nil
}
