package document

import (
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// ArgFile is the construction argument naming the file a Creator works on.
const ArgFile = "file"

// Document is the product of a format Creator.
type Document interface {
	// Format returns the registry key of the format, e.g. "json".
	Format() string

	// Edit describes working on file in this format.
	Edit(file string) string

	// Decode parses data into a generic tree of maps, slices and scalars.
	Decode(data []byte) (map[string]any, error)

	// Encode renders a generic tree in this format.
	Encode(v map[string]any) ([]byte, error)
}

// Creator produces the Document for one format. Make is the factory method.
type Creator interface {
	// Make returns a new Document.
	Make() Document

	// File returns the file the Creator was constructed for.
	File() string
}

// CallEdit makes the Creator's Document and edits the Creator's file with it.
func CallEdit(c Creator) string {
	return c.Make().Edit(c.File())
}

// file holds the construction-time state shared by every Creator.
type file struct {
	name string
}

func newFile(args config.Config) file {
	return file{name: args.String(ArgFile, "")}
}

// File returns the file name.
func (f file) File() string {
	return f.name
}

// editMessage is the Edit text shared by the built-in Documents.
func editMessage(file, format string) string {
	return fmt.Sprintf("working on %s %s...", file, format)
}

// NewRegistry returns a format registry with the built-in formats registered.
func NewRegistry() *factorykit.Registry[Creator] {
	reg := factorykit.NewRegistry[Creator]("formats")
	RegisterBuiltins(reg)
	return reg
}

// RegisterBuiltins registers the json, xml and yaml formats.
func RegisterBuiltins(reg *factorykit.Registry[Creator]) {
	reg.RegisterMany(map[string]factorykit.Factory[Creator]{
		FormatJSON: NewJSONFile,
		FormatXML:  NewXMLFile,
		FormatYAML: NewYAMLFile,
	})
}
