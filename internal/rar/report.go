package rar

import "github.com/AndreyAkinshin/rarlens/internal/logtree"

// AppendFinalReport adds the build-wide used and unused search paths to root,
// each as a folder of sorted items. Empty sets produce no folder.
// Call it once, after every invocation has been analyzed.
func (a *Analyzer) AppendFinalReport(root *logtree.Node) {
	appendLocations(root, UsedReportFolder, a.UsedLocations())
	appendLocations(root, UnusedReportFolder, a.UnusedLocations())
}

func appendLocations(root *logtree.Node, folder string, locations []string) {
	if len(locations) == 0 {
		return
	}
	node := root.GetOrCreateChild(logtree.KindFolder, folder)
	for _, location := range locations {
		node.AddChild(logtree.NewItem(location))
	}
}
