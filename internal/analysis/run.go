// Package analysis drives the ResolveAssemblyReference analyzer over a whole build tree.
package analysis

import (
	"github.com/AndreyAkinshin/rarlens/internal/logtree"
	"github.com/AndreyAkinshin/rarlens/internal/model"
	"github.com/AndreyAkinshin/rarlens/internal/rar"
)

// DefaultTaskName is the task analyzed when Options.TaskNames is empty.
const DefaultTaskName = rar.TaskName

// Options configures a build analysis.
type Options struct {
	// TaskNames lists the task names treated as reference resolution invocations.
	TaskNames []string
	// OnInvocation, if set, is called after each invocation is analyzed, in build order.
	OnInvocation func(result model.InvocationResult)
}

// Run analyzes every matching task under root in build order, appends the
// final search path report to root, and returns a summary.
//
// Matching tasks are found by a pre-order walk; a matched task's subtree is
// not searched for further tasks. The tree is annotated in place.
func Run(root *logtree.Node, opts Options) *model.Summary {
	names := opts.TaskNames
	if len(names) == 0 {
		names = []string{DefaultTaskName}
	}
	match := make(map[string]bool, len(names))
	for _, name := range names {
		match[name] = true
	}

	analyzer := rar.NewAnalyzer()
	summary := &model.Summary{}

	root.Walk(func(n *logtree.Node) bool {
		if n.Kind != logtree.KindTask || !match[n.Name] {
			return true
		}

		analyzer.AnalyzeInvocation(n)

		result := model.InvocationResult{
			Project:  enclosingProject(n),
			Task:     n.Name,
			Duration: n.Duration,
			Used:     folderTexts(n, rar.UsedLocationsFolder),
			Unused:   folderTexts(n, rar.UnusedLocationsFolder),
		}
		summary.Invocations = append(summary.Invocations, result)
		if opts.OnInvocation != nil {
			opts.OnInvocation(result)
		}
		return false
	})

	analyzer.AppendFinalReport(root)

	summary.TotalDuration = analyzer.TotalDuration
	summary.UsedLocations = analyzer.UsedLocations()
	summary.UnusedLocations = analyzer.UnusedLocations()
	summary.PrivateCopied = analyzer.Propagated()
	return summary
}

func enclosingProject(n *logtree.Node) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind == logtree.KindProject {
			return p.Name
		}
	}
	return ""
}

func folderTexts(n *logtree.Node, folder string) []string {
	f := n.FindChild(logtree.KindFolder, folder)
	if f == nil {
		return nil
	}
	texts := make([]string, 0, len(f.Children()))
	for _, c := range f.Children() {
		texts = append(texts, c.String())
	}
	return texts
}
