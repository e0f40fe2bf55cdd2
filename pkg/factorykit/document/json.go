package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// FormatJSON is the registry key of the JSON format.
const FormatJSON = "json"

// JSONFile is the Creator for JSON documents.
type JSONFile struct {
	file
}

var _ Creator = JSONFile{}

// NewJSONFile is the Factory for JSONFile.
func NewJSONFile(args config.Config) Creator {
	return JSONFile{file: newFile(args)}
}

// Make returns a JSON Document.
func (JSONFile) Make() Document {
	return JSON{}
}

// JSON is the JSON Document.
type JSON struct{}

// Format returns "json".
func (JSON) Format() string { return FormatJSON }

// Edit describes working on file as JSON.
func (JSON) Edit(file string) string {
	return editMessage(file, FormatJSON)
}

// Decode parses a JSON object. Numbers are kept as json.Number so that
// integers survive conversion to other formats unchanged.
func (JSON) Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v map[string]any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse json: %w", errJSONTrailing)
	}
	return v, nil
}

var errJSONTrailing = errors.New("unexpected data after top-level object")

// Encode renders v as indented JSON with a trailing newline.
func (JSON) Encode(v map[string]any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return append(out, '\n'), nil
}
