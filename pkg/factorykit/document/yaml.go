package document

import (
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"gopkg.in/yaml.v3"
)

// FormatYAML is the registry key of the YAML format.
const FormatYAML = "yaml"

// YAMLFile is the Creator for YAML documents.
type YAMLFile struct {
	file
}

var _ Creator = YAMLFile{}

// NewYAMLFile is the Factory for YAMLFile.
func NewYAMLFile(args config.Config) Creator {
	return YAMLFile{file: newFile(args)}
}

// Make returns a YAML Document.
func (YAMLFile) Make() Document {
	return YAML{}
}

// YAML is the YAML Document.
type YAML struct{}

// Format returns "yaml".
func (YAML) Format() string { return FormatYAML }

// Edit describes working on file as YAML.
func (YAML) Edit(file string) string {
	return editMessage(file, FormatYAML)
}

// Decode parses a YAML mapping.
func (YAML) Decode(data []byte) (map[string]any, error) {
	var v map[string]any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return v, nil
}

// Encode renders v as YAML.
func (YAML) Encode(v map[string]any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}
	return out, nil
}
