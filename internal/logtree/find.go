package logtree

// FindFirst returns the first descendant matching pred in depth-first
// pre-order. The node itself is not considered. Returns nil if nothing matches.
func (n *Node) FindFirst(pred func(*Node) bool) *Node {
	for _, c := range n.children {
		if pred(c) {
			return c
		}
		if found := c.FindFirst(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindFirstOfKind returns the first descendant of the given kind matching pred.
// A nil pred matches every node of that kind.
func (n *Node) FindFirstOfKind(kind Kind, pred func(*Node) bool) *Node {
	return n.FindFirst(func(c *Node) bool {
		return c.Kind == kind && (pred == nil || pred(c))
	})
}

// FindFirstNamed returns the first descendant of the given kind with the given name.
func (n *Node) FindFirstNamed(kind Kind, name string) *Node {
	return n.FindFirstOfKind(kind, func(c *Node) bool {
		return c.Name == name
	})
}

// Walk visits the node and its descendants in pre-order.
// Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// IsNamed reports whether the kind is identified by its name rather than by text.
func (k Kind) IsNamed() bool {
	return k != KindItem && k != KindMessage
}
