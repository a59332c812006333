package logtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/rarlens/internal/schema"
)

// Supported document encodings.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is the serialized form of a Node as written by upstream log parsers.
type Document struct {
	Kind     string      `yaml:"kind" json:"kind"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Text     string      `yaml:"text,omitempty" json:"text,omitempty"`
	Value    string      `yaml:"value,omitempty" json:"value,omitempty"`
	Duration string      `yaml:"duration,omitempty" json:"duration,omitempty"`
	Children []*Document `yaml:"children,omitempty" json:"children,omitempty"`
}

// DocumentError reports a problem at a specific location of a tree document.
type DocumentError struct {
	Path    string
	Message string
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load reads and decodes a tree document from a file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree document: %w", err)
	}
	return Decode(data)
}

// DecodeReader reads all of r and decodes it as a tree document.
func DecodeReader(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree document: %w", err)
	}
	return Decode(data)
}

// Decode parses a YAML or JSON tree document, validates it against the
// embedded tree schema, and builds the node tree.
// Input whose first non-space byte is '{' is decoded as JSON, since yaml.v3
// does not accept every JSON string escape (`\/`, surrogate pairs).
func Decode(data []byte) (*Node, error) {
	if isJSON(data) {
		return decodeJSON(data)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	if raw == nil {
		return nil, &DocumentError{Message: "tree document is empty"}
	}
	if err := schema.ValidateTree(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	return FromDocument(&doc)
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeJSON(data []byte) (*Node, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	if err := schema.ValidateTree(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	return FromDocument(&doc)
}

// FromDocument converts a decoded document into a node tree.
func FromDocument(doc *Document) (*Node, error) {
	return fromDocument(doc, "$")
}

func fromDocument(doc *Document, path string) (*Node, error) {
	kind, ok := ParseKind(doc.Kind)
	if !ok {
		return nil, &DocumentError{Path: path, Message: fmt.Sprintf("unknown node kind %q", doc.Kind)}
	}

	n := &Node{
		Kind:  kind,
		Name:  doc.Name,
		Text:  doc.Text,
		Value: doc.Value,
	}
	if doc.Duration != "" {
		d, err := time.ParseDuration(doc.Duration)
		if err != nil {
			return nil, &DocumentError{Path: path, Message: fmt.Sprintf("invalid duration %q", doc.Duration)}
		}
		n.Duration = d
	}

	for i, childDoc := range doc.Children {
		if childDoc == nil {
			continue
		}
		child, err := fromDocument(childDoc, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// ToDocument converts a node tree into its serializable form.
func ToDocument(n *Node) *Document {
	doc := &Document{
		Kind:  n.Kind.String(),
		Name:  n.Name,
		Text:  n.Text,
		Value: n.Value,
	}
	if n.Duration != 0 {
		doc.Duration = n.Duration.String()
	}
	for _, c := range n.children {
		doc.Children = append(doc.Children, ToDocument(c))
	}
	return doc
}

// Encode serializes the tree rooted at n in the given format ("yaml" or "json").
func Encode(n *Node, format string) ([]byte, error) {
	doc := ToDocument(n)

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported tree format %q", format)
	}
}
