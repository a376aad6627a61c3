package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// ModulesRenderer renders the binding table.
type ModulesRenderer struct {
	out  io.Writer
	json bool
}

// NewModulesRenderer creates a new modules renderer
func NewModulesRenderer(out io.Writer, json bool) *ModulesRenderer {
	return &ModulesRenderer{out: out, json: json}
}

// Render writes the binding list as a table or JSON.
func (r *ModulesRenderer) Render(result *usecase.ListModulesResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.Bindings) == 0 {
		fmt.Fprintln(r.out, "No modules registered")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{title("key"), title("address"), title("pending"), title("history")})

	for _, b := range result.Bindings {
		pending := "-"
		if b.Pending != nil {
			pending = pendingStyle.Sprintf("%s @ %s", shortAddr(b.Pending.NewAddress), fmtTime(b.Pending.ExecuteAfter))
		}
		t.AppendRow(table.Row{
			b.Key,
			addressStyle.Sprint(b.Address.Hex()),
			pending,
			b.HistoryCount,
		})
	}
	t.Render()

	state := runningStyle.Sprint("running")
	if result.Summary.Paused {
		state = pausedStyle.Sprint("PAUSED")
	}
	fmt.Fprintf(r.out, "\n%d modules, %d pending upgrades, storage v%d, min delay %s, %s\n",
		result.Summary.Total, result.Summary.PendingCount,
		result.Summary.StorageVersion, result.Summary.MinDelay, state)
	return nil
}
