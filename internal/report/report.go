// Package report renders the final model comparison table. It aggregates
// EvaluationResults and formats them; it computes nothing of its own.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/qmlgo/qheart/internal/results"
)

// Table renders the comparison table for a completed run
func Table(run *results.Run) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Run %s  (rows=%d seed=%d shots=%d test=%.2f took=%dms)\n\n",
		run.ID, run.DatasetRows, run.Seed, run.Shots, run.TestFraction, run.DurationMS)

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tVARIANT\tACCURACY\tPRECISION\tRECALL\tF1")
	for _, res := range run.Results {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			res.Model, res.Variant, res.Accuracy, res.Precision, res.Recall, res.F1)
	}
	_ = w.Flush()

	return sb.String()
}
