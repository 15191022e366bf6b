// Shared output helpers for planner CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// printJSON writes v as indented JSON, the shape every command emits
// under --json.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printTaskTable prints tasks in a human-readable table format.
func printTaskTable(w io.Writer, tasks []*types.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tDUE\tSTATUS\tPRIORITY")
	fmt.Fprintln(tw, "--\t-----\t----\t---\t------\t--------")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
			t.ID,
			truncate(t.Title, 40),
			t.Type,
			formatDue(t.DueDate),
			t.Status,
			t.PriorityScore,
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "Total: %d task(s)\n", len(tasks))
}

// printCourseTable prints courses in a human-readable table format.
func printCourseTable(w io.Writer, courses []*types.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME")
	fmt.Fprintln(tw, "--\t----\t----")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Code, truncate(c.Name, 40))
	}
	tw.Flush()

	fmt.Fprintf(w, "Total: %d course(s)\n", len(courses))
}

// formatDue renders a due timestamp for table output, or a dash when the
// task has no due date.
func formatDue(due time.Time) string {
	if due.IsZero() {
		return "-"
	}
	return due.Format("2006-01-02 15:04")
}

// truncate shortens s to at most n bytes for table output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
