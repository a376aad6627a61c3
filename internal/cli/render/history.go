package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// HistoryRenderer renders a key's surviving audit trail.
type HistoryRenderer struct {
	out  io.Writer
	json bool
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer, json bool) *HistoryRenderer {
	return &HistoryRenderer{out: out, json: json}
}

// Render writes the history oldest-first.
func (r *HistoryRenderer) Render(result *usecase.ShowHistoryResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Count == 0 {
		fmt.Fprintf(r.out, "No history for %q\n", result.Key)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", title("old"), title("new"), title("executor"), title("when")})

	for i, e := range result.Entries {
		t.AppendRow(table.Row{
			i,
			shortAddr(e.OldAddress),
			shortAddr(e.NewAddress),
			shortAddr(e.Executor),
			timestampStyle.Sprint(fmtTime(e.Timestamp)),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d surviving entries for %q\n", result.Count, result.Key)
	return nil
}
