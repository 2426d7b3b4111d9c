package output

import (
	"fmt"
	"io"

	"github.com/policylint/policylint/pkg/ui"
)

// WriteConsole renders a report as styled text. Styles degrade to
// plain output when stdout is not a terminal (see ui.AutoColor).
func WriteConsole(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintln(w, ui.HeaderStyle.Render("policy "+r.Policy)); err != nil {
		return err
	}

	for _, line := range r.Violations {
		if _, err := fmt.Fprintf(w, "  %s %s\n", ui.FailStyle.Render(ui.Icon("✗", "x")), ui.ViolationStyle.Render(line)); err != nil {
			return err
		}
	}

	var summary string
	if r.Compliant {
		summary = fmt.Sprintf("%s %s", ui.PassStyle.Render(ui.Icon("✓", "+")), "compliant with all enabled rules")
	} else {
		summary = fmt.Sprintf("%s %s", ui.FailStyle.Render(ui.Icon("✗", "x")), fmt.Sprintf("%d violation(s) found", len(r.Violations)))
		if len(r.Violations) == 0 {
			// Capture was disabled; only the outcome is known.
			summary = fmt.Sprintf("%s %s", ui.FailStyle.Render(ui.Icon("✗", "x")), "violations found (run with capture for details)")
		}
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
