package logtree

import (
	"reflect"
	"testing"
)

// sampleTree builds:
//
//	Build
//	  Project a
//	    Folder Results
//	      Item x
//	  Project b
//	    Folder Results
//	    Item y
func sampleTree() *Node {
	root := New(KindBuild, "Build")
	a := root.AddChild(New(KindProject, "a"))
	a.AddChild(New(KindFolder, "Results")).AddChild(NewItem("x"))
	b := root.AddChild(New(KindProject, "b"))
	b.AddChild(New(KindFolder, "Results"))
	b.AddChild(NewItem("y"))
	return root
}

func TestFindFirst_PreOrder(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	results := root.FindFirstNamed(KindFolder, "Results")
	if results == nil || results.Parent().Name != "a" {
		t.Fatalf("FindFirstNamed(Results) = %v, want the one under project a", results)
	}

	item := root.FindFirstOfKind(KindItem, nil)
	if item == nil || item.Text != "x" {
		t.Errorf("FindFirstOfKind(item) = %v, want x", item)
	}
}

func TestFindFirst_ExcludesSelf(t *testing.T) {
	t.Parallel()

	n := New(KindFolder, "Results")
	if got := n.FindFirstNamed(KindFolder, "Results"); got != nil {
		t.Errorf("FindFirstNamed matched the node itself")
	}
}

func TestFindFirst_NoMatch(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	if got := root.FindFirst(func(n *Node) bool { return n.Name == "missing" }); got != nil {
		t.Errorf("FindFirst = %v, want nil", got)
	}
}

func TestFindChild_DirectOnly(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	if got := root.FindChild(KindFolder, "Results"); got != nil {
		t.Errorf("FindChild found a grandchild: %v", got)
	}
	if got := root.FindChild(KindProject, "b"); got == nil {
		t.Error("FindChild(project b) = nil")
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Kind.String()+":"+n.String())
		return n.Name != "a"
	})

	want := []string{"build:Build", "project:a", "project:b", "folder:Results", "item:y"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("Walk visited %v, want %v", visited, want)
	}
}

func TestKind_IsNamed(t *testing.T) {
	t.Parallel()

	if KindItem.IsNamed() || KindMessage.IsNamed() {
		t.Error("items and messages are not named")
	}
	for _, k := range []Kind{KindBuild, KindFolder, KindParameter, KindMetadata, KindTask} {
		if !k.IsNamed() {
			t.Errorf("%v.IsNamed() = false", k)
		}
	}
}
