package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
)

// FormatXML is the registry key of the XML format.
const FormatXML = "xml"

// Keys used for attributes and mixed text when XML is mapped to a tree.
const (
	xmlAttrPrefix = "@"
	xmlTextKey    = "#text"
)

// XML errors.
var (
	// ErrXMLRoot indicates a document or tree without exactly one root element.
	ErrXMLRoot = errors.New("xml document needs exactly one root element")

	// ErrXMLName indicates a tree key that is not a valid XML name.
	ErrXMLName = errors.New("invalid xml name")
)

// XMLFile is the Creator for XML documents.
type XMLFile struct {
	file
}

var _ Creator = XMLFile{}

// NewXMLFile is the Factory for XMLFile.
func NewXMLFile(args config.Config) Creator {
	return XMLFile{file: newFile(args)}
}

// Make returns an XML Document.
func (XMLFile) Make() Document {
	return XML{}
}

// XML is the XML Document.
//
// Trees follow the usual XML-to-dict mapping: the root element is the single
// top-level key, elements with children become maps, repeated siblings
// become lists, text-only elements become strings, empty elements become
// nil, attributes become "@name" keys and text next to child elements is
// kept under "#text".
type XML struct{}

// Format returns "xml".
func (XML) Format() string { return FormatXML }

// Edit describes working on file as XML.
func (XML) Edit(file string) string {
	return editMessage(file, FormatXML)
}

// Decode parses an XML document.
func (XML) Decode(data []byte) (map[string]any, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse xml: %w", ErrXMLRoot)
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeElement(dec, start)
			if err != nil {
				return nil, fmt.Errorf("parse xml: %w", err)
			}
			if err := expectEnd(dec); err != nil {
				return nil, fmt.Errorf("parse xml: %w", err)
			}
			return map[string]any{start.Name.Local: v}, nil
		}
	}
}

// expectEnd consumes the rest of the document, allowing only whitespace,
// comments and processing instructions after the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("%w: found <%s> after it", ErrXMLRoot, t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: found text after it", ErrXMLRoot)
			}
		}
	}
}

// validXMLName reports whether name can be used as an element or
// attribute name: a letter or underscore, then letters, digits, '_', '-'
// or '.'.
func validXMLName(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return name != ""
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	node := make(map[string]any)
	for _, attr := range start.Attr {
		node[xmlAttrPrefix+attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			appendChild(node, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			s := strings.TrimSpace(text.String())
			if len(node) == 0 {
				if s == "" {
					return nil, nil
				}
				return s, nil
			}
			if s != "" {
				node[xmlTextKey] = s
			}
			return node, nil
		}
	}
}

// appendChild stores child under name, turning repeated names into a list.
func appendChild(node map[string]any, name string, child any) {
	existing, ok := node[name]
	if !ok {
		node[name] = child
		return
	}
	if list, ok := existing.([]any); ok {
		node[name] = append(list, child)
		return
	}
	node[name] = []any{existing, child}
}

// Encode renders a tree with exactly one root key as indented XML.
func (XML) Encode(v map[string]any) ([]byte, error) {
	if len(v) != 1 {
		return nil, fmt.Errorf("render xml: %w", ErrXMLRoot)
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	for name, root := range v {
		if _, isList := root.([]any); isList {
			return nil, fmt.Errorf("render xml: %w", ErrXMLRoot)
		}
		if err := encodeElement(enc, name, root); err != nil {
			return nil, fmt.Errorf("render xml: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("render xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, name string, v any) error {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if err := encodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	if !validXMLName(name) {
		return fmt.Errorf("%w: %q", ErrXMLName, name)
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	var text string
	var children []string

	switch t := v.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			switch {
			case strings.HasPrefix(k, xmlAttrPrefix):
				attr := strings.TrimPrefix(k, xmlAttrPrefix)
				if !validXMLName(attr) {
					return fmt.Errorf("%w: attribute %q", ErrXMLName, attr)
				}
				start.Attr = append(start.Attr, xml.Attr{
					Name:  xml.Name{Local: attr},
					Value: fmt.Sprint(t[k]),
				})
			case k == xmlTextKey:
				text = fmt.Sprint(t[k])
			default:
				children = append(children, k)
			}
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if text != "" {
			if err := enc.EncodeToken(xml.CharData(text)); err != nil {
				return err
			}
		}
		for _, k := range children {
			if err := encodeElement(enc, k, t[k]); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	default:
		text = fmt.Sprint(t)
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
