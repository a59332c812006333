// Package rar analyzes ResolveAssemblyReference task invocations in a build tree.
//
// For each invocation it recovers which configured search paths actually
// satisfied a reference, restores the Private metadata on dependencies that
// were not copied locally because their source items disagreed on it, and
// tracks build-wide used and unused search paths for a final report.
package rar

import (
	"sort"
	"strings"
	"time"

	"github.com/AndreyAkinshin/rarlens/internal/logtree"
)

// Analyzer holds the build-wide state threaded through all invocations of one build.
//
// Create one Analyzer per build, call AnalyzeInvocation for every invocation
// in build order, then call AppendFinalReport once. Reclassification of a
// search path depends on whether an earlier invocation used it, so
// invocations must not be analyzed out of order or concurrently.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	// TotalDuration is the summed duration of all analyzed invocations.
	TotalDuration time.Duration

	used        map[string]struct{}
	unused      map[string]struct{}
	currentUsed map[string]struct{}

	invocations int
	propagated  int
}

// NewAnalyzer creates an Analyzer with empty build-wide state.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		used:        make(map[string]struct{}),
		unused:      make(map[string]struct{}),
		currentUsed: make(map[string]struct{}),
	}
}

// AnalyzeInvocation processes one task invocation.
// It never fails: missing folders, parameters or messages only disable the
// part of the analysis that needs them.
//
// A location named by a "found at" message is removed from the build-wide
// unused set as soon as it is seen, even when this invocation does not list
// it in SearchPaths or has no SearchPaths parameter at all.
func (a *Analyzer) AnalyzeInvocation(invocation *logtree.Node) {
	clear(a.currentUsed)
	a.invocations++

	results := invocation.FindFirstNamed(logtree.KindFolder, ResultsFolder)
	parameters := invocation.FindFirstNamed(logtree.KindFolder, ParametersFolder)

	a.TotalDuration += invocation.Duration

	var searchPaths []string
	if parameters != nil {
		searchPaths = readSearchPaths(parameters)
	}

	if results != nil {
		results.SortChildren()
		for _, reference := range results.ChildrenOfKind(logtree.KindParameter) {
			a.analyzeReference(reference, parameters)
		}
	}

	if searchPaths != nil {
		a.reconcile(invocation, searchPaths)
	}
}

// readSearchPaths returns the configured search paths in declaration order,
// or nil if the invocation does not list them.
func readSearchPaths(parameters *logtree.Node) []string {
	node := parameters.FindFirst(func(n *logtree.Node) bool {
		return n.Kind.IsNamed() && n.Name == SearchPathsParam
	})
	if node == nil {
		return nil
	}
	paths := make([]string, 0, len(node.Children()))
	for _, c := range node.Children() {
		paths = append(paths, c.String())
	}
	return paths
}

func (a *Analyzer) analyzeReference(reference, parameters *logtree.Node) {
	resolvedPath, hasResolvedPath := findQuoted(reference, resolvedFilePathPrefix)
	if location, ok := findQuoted(reference, foundAtLocationPrefix); ok {
		// A reference passed by file path reports its own path as the
		// location; that is not a search path hit.
		if !hasResolvedPath || resolvedPath != location {
			a.used[location] = struct{}{}
			a.currentUsed[location] = struct{}{}
			// The location may be absent from this invocation's SearchPaths,
			// in which case reconcile would not clear an earlier unused mark.
			delete(a.unused, location)
		}
	}

	if !isDependencyRecord(reference.Name) {
		return
	}

	var requiredBy []*logtree.Node
	privateMixed := false
	for _, message := range reference.ChildrenOfKind(logtree.KindItem) {
		switch {
		case strings.HasPrefix(message.Text, requiredByPrefix):
			requiredBy = append(requiredBy, message)
		case message.Text == notCopyLocalPrivateMixed:
			privateMixed = true
		}
	}

	if privateMixed && parameters != nil {
		a.propagated += propagatePrivate(parameters, requiredBy)
	}
}

// findQuoted returns the quoted value of the first item under n whose text starts with prefix.
func findQuoted(n *logtree.Node, prefix string) (string, bool) {
	var value string
	found := n.FindFirstOfKind(logtree.KindItem, func(item *logtree.Node) bool {
		v, ok := quotedValue(item.String(), prefix)
		if ok {
			value = v
		}
		return ok
	})
	return value, found != nil
}

// reconcile classifies each search path of the invocation as used or unused,
// both on the invocation itself and in the build-wide sets.
func (a *Analyzer) reconcile(invocation *logtree.Node, searchPaths []string) {
	for _, path := range searchPaths {
		if _, ok := a.currentUsed[path]; ok {
			invocation.GetOrCreateChild(logtree.KindFolder, UsedLocationsFolder).AddChild(logtree.NewItem(path))
			delete(a.unused, path)
			continue
		}

		invocation.GetOrCreateChild(logtree.KindFolder, UnusedLocationsFolder).AddChild(logtree.NewItem(path))
		if _, ok := a.used[path]; ok {
			delete(a.unused, path)
		} else {
			a.unused[path] = struct{}{}
		}
	}
}

// Invocations returns the number of analyzed invocations.
func (a *Analyzer) Invocations() int {
	return a.invocations
}

// Propagated returns how many Private metadata entries were copied onto dependency messages.
func (a *Analyzer) Propagated() int {
	return a.propagated
}

// UsedLocations returns the search paths used by any invocation so far, sorted.
func (a *Analyzer) UsedLocations() []string {
	return sortedKeys(a.used)
}

// UnusedLocations returns the search paths no invocation has used so far, sorted.
func (a *Analyzer) UnusedLocations() []string {
	return sortedKeys(a.unused)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
