package output

import (
	"fmt"

	"github.com/AndreyAkinshin/rarlens/internal/model"
)

// Report prints the text summary of an analysis.
// The report is printed in quiet mode too; only the header is skipped.
func (w *Writer) Report(s *model.Summary, usedTitle, unusedTitle string) {
	w.Section("Reference resolution summary")
	if !w.quiet {
		w.Println("")
	}

	w.SummaryItem("Invocations", fmt.Sprintf("%d", len(s.Invocations)))
	w.SummaryItem("Total duration", s.TotalDuration.String())
	if s.PrivateCopied > 0 {
		w.SummaryItem("Private metadata copied", fmt.Sprintf("%d", s.PrivateCopied))
	}

	if len(s.Invocations) > 0 {
		w.Println("")
		w.SummarySectionLabel("Invocations:")
		for _, inv := range s.Invocations {
			name := inv.Project
			if name == "" {
				name = inv.Task
			}
			w.InvocationLine(name, inv.Duration.String(), len(inv.Used), len(inv.Unused))
		}
	}

	if !s.HasLocations() {
		return
	}

	w.Println("")
	w.SummaryCount(usedTitle, len(s.UsedLocations), false)
	w.List(s.UsedLocations)
	w.SummaryCount(unusedTitle, len(s.UnusedLocations), len(s.UnusedLocations) > 0)
	w.List(s.UnusedLocations)
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	if w.color {
		w.Println("  %s%s:%s %s", dim, label, reset, value)
	} else {
		w.Println("  %s: %s", label, value)
	}
}

// SummarySectionLabel prints a label for a summary section (e.g., "Invocations:").
func (w *Writer) SummarySectionLabel(label string) {
	if w.color {
		w.Println("  %s%s%s", dim, label, reset)
	} else {
		w.Println("  %s", label)
	}
}

// SummaryCount prints a titled count, highlighted in yellow when attention is true.
func (w *Writer) SummaryCount(title string, count int, attention bool) {
	switch {
	case !w.color:
		w.Println("%s (%d):", title, count)
	case attention:
		w.Println("%s%s%s (%s%d%s):", bold, title, reset, yellow, count, reset)
	default:
		w.Println("%s%s%s (%d):", bold, title, reset, count)
	}
}

// InvocationLine prints one analyzed invocation with its duration and
// the number of used and unused search paths.
func (w *Writer) InvocationLine(name, duration string, used, unused int) {
	if w.color {
		w.Println("    %s%-24s%s %s%-10s%s used %d, unused %d", cyan, name, reset, dim, duration, reset, used, unused)
	} else {
		w.Println("    %-24s %-10s used %d, unused %d", name, duration, used, unused)
	}
}
