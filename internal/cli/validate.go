package cli

import (
	"fmt"

	"github.com/AndreyAkinshin/rarlens/internal/errors"
	"github.com/AndreyAkinshin/rarlens/internal/logtree"
)

// cmdValidate checks a tree document against the tree schema.
func cmdValidate(args []string) int {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		out.HelpTitle("rarlens validate - validate a build tree document")
		out.HelpSection("Usage:")
		out.HelpUsage("rarlens validate <file>")
		out.Println("")
		return 0
	}
	if len(args) != 1 {
		out.ErrorPrefix("validate: expected exactly one tree document, got %d arguments", len(args))
		return errors.ExitConfigError
	}

	root, err := readTree(args[0])
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	nodes, tasks := 0, 0
	root.Walk(func(n *logtree.Node) bool {
		nodes++
		if n.Kind == logtree.KindTask {
			tasks++
		}
		return true
	})

	out.ValidationSuccess("Tree document is valid.")
	out.SummaryItem("Nodes", fmt.Sprintf("%d", nodes))
	out.SummaryItem("Tasks", fmt.Sprintf("%d", tasks))
	return 0
}
