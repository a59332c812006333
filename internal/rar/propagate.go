package rar

import (
	"golang.org/x/text/cases"

	"github.com/AndreyAkinshin/rarlens/internal/logtree"
)

// propagatePrivate copies the Private metadata of each source item named by a
// "Required by" message onto that message. Source items are the children of
// the Assemblies parameter, matched by text ignoring case; the first item wins
// when several differ only by case. It returns the number of metadata entries added.
func propagatePrivate(parameters *logtree.Node, requiredBy []*logtree.Node) int {
	assemblies := parameters.FindFirstNamed(logtree.KindParameter, AssembliesParam)
	if assemblies == nil {
		return 0
	}

	fold := cases.Fold()
	sources := make(map[string]*logtree.Node)
	for _, item := range assemblies.ChildrenOfKind(logtree.KindItem) {
		key := fold.String(item.Text)
		if _, exists := sources[key]; !exists {
			sources[key] = item
		}
	}

	added := 0
	for _, message := range requiredBy {
		name, ok := quotedValue(message.Text, requiredByPrefix)
		if !ok {
			continue
		}
		source, ok := sources[fold.String(name)]
		if !ok {
			continue
		}
		for _, md := range source.ChildrenOfKind(logtree.KindMetadata) {
			if md.Name == PrivateMetadata {
				message.AddChild(logtree.NewMetadata(md.Name, md.Value))
				added++
			}
		}
	}
	return added
}
