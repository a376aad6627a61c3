package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// RefreshRenderer renders the outcome of a cache refresh sweep.
type RefreshRenderer struct {
	out  io.Writer
	json bool
}

// NewRefreshRenderer creates a new refresh renderer
func NewRefreshRenderer(out io.Writer, json bool) *RefreshRenderer {
	return &RefreshRenderer{out: out, json: json}
}

// Render summarizes the sweep. Per-target lines are emitted live by the
// event sink; this prints the closing tally.
func (r *RefreshRenderer) Render(report *usecase.RefreshReport) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if len(report.Attempts) == 0 {
		fmt.Fprintln(r.out, "No refresh targets declared")
		return nil
	}

	if report.Failed == 0 {
		fmt.Fprintf(r.out, "%s %d/%d caches refreshed\n",
			color.GreenString("OK"), report.Succeeded, len(report.Attempts))
	} else {
		fmt.Fprintf(r.out, "%s %d refreshed, %d failed of %d targets\n",
			color.YellowString("PARTIAL"), report.Succeeded, report.Failed, len(report.Attempts))
	}
	return nil
}
