// Package logtree provides the in-memory build diagnostic tree that analyzers operate on.
package logtree

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindBuild Kind = iota
	KindProject
	KindTarget
	KindTask
	KindFolder
	KindParameter
	KindItem
	KindMetadata
	KindMessage
)

var kindNames = []string{
	KindBuild:     "build",
	KindProject:   "project",
	KindTarget:    "target",
	KindTask:      "task",
	KindFolder:    "folder",
	KindParameter: "parameter",
	KindItem:      "item",
	KindMetadata:  "metadata",
	KindMessage:   "message",
}

// String returns the lowercase kind name used in tree documents.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name to a Kind. The comparison is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	lower := strings.ToLower(s)
	for i, name := range kindNames {
		if name == lower {
			return Kind(i), true
		}
	}
	return 0, false
}

// ValidKinds returns all kind names in declaration order.
func ValidKinds() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames)
	return names
}

// Node is a single entry of a build diagnostic tree.
// Which fields are meaningful depends on Kind:
//   - Item and Message carry Text.
//   - Metadata carries Name and Value.
//   - Build, Project, Target and Task may carry a Duration.
//   - All other kinds are identified by Name.
type Node struct {
	Kind     Kind
	Name     string
	Text     string
	Value    string
	Duration time.Duration

	parent   *Node
	children []*Node
}

// New creates a named node of the given kind.
func New(kind Kind, name string) *Node {
	return &Node{Kind: kind, Name: name}
}

// NewItem creates an item node with the given text.
func NewItem(text string) *Node {
	return &Node{Kind: KindItem, Text: text}
}

// NewMessage creates a message node with the given text.
func NewMessage(text string) *Node {
	return &Node{Kind: KindMessage, Text: text}
}

// NewMetadata creates a metadata node with the given key and value.
func NewMetadata(name, value string) *Node {
	return &Node{Kind: KindMetadata, Name: name, Value: value}
}

// String returns the textual rendering of the node.
// Items and messages render as their text, metadata as "Name = Value",
// everything else as its name.
func (n *Node) String() string {
	switch n.Kind {
	case KindItem, KindMessage:
		return n.Text
	case KindMetadata:
		return n.Name + " = " + n.Value
	default:
		return n.Name
	}
}

// Parent returns the node this node was added to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// ChildrenOfKind returns the direct children of the given kind, in order.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, c := range n.children {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// AddChild appends child to the node and returns it.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// FindChild returns the first direct child of the given kind and name.
func (n *Node) FindChild(kind Kind, name string) *Node {
	for _, c := range n.children {
		if c.Kind == kind && c.Name == name {
			return c
		}
	}
	return nil
}

// GetOrCreateChild returns the direct child with the given kind and name,
// appending a new one if none exists.
func (n *Node) GetOrCreateChild(kind Kind, name string) *Node {
	if c := n.FindChild(kind, name); c != nil {
		return c
	}
	return n.AddChild(New(kind, name))
}

// SortChildren stably sorts the direct children by name, ascending.
func (n *Node) SortChildren() {
	sort.SliceStable(n.children, func(i, j int) bool {
		return n.children[i].Name < n.children[j].Name
	})
}
