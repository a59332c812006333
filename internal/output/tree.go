package output

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/rarlens/internal/logtree"
)

// Tree prints n and its descendants as an indented outline, two spaces per level.
// Items are printed as list entries; every other node is prefixed with its kind.
func (w *Writer) Tree(n *logtree.Node) {
	title := cases.Title(language.English)
	w.treeNode(n, 0, title)
}

func (w *Writer) treeNode(n *logtree.Node, depth int, title cases.Caser) {
	indent := strings.Repeat("  ", depth)

	if n.Kind == logtree.KindItem {
		w.Println("%s- %s", indent, n.Text)
	} else {
		label := title.String(n.Kind.String())
		line := n.String()
		if n.Duration > 0 {
			line += " (" + n.Duration.String() + ")"
		}
		if w.color {
			w.Println("%s%s%s%s %s", indent, dim, label, reset, line)
		} else {
			w.Println("%s%s %s", indent, label, line)
		}
	}

	for _, c := range n.Children() {
		w.treeNode(c, depth+1, title)
	}
}
