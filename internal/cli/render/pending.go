package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// PendingRenderer renders the outstanding upgrade queue.
type PendingRenderer struct {
	out  io.Writer
	json bool
}

// NewPendingRenderer creates a new pending renderer
func NewPendingRenderer(out io.Writer, json bool) *PendingRenderer {
	return &PendingRenderer{out: out, json: json}
}

// Render writes the pending proposals sorted by key.
func (r *PendingRenderer) Render(views []usecase.PendingUpgradeView) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	if len(views) == 0 {
		fmt.Fprintln(r.out, "No pending upgrades")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{title("key"), title("new address"), title("executable after"), title("state")})

	for _, v := range views {
		state := pendingStyle.Sprint("waiting")
		if v.Ready {
			state = readyStyle.Sprint("ready")
		}
		t.AppendRow(table.Row{
			v.Key,
			v.Pending.NewAddress.Hex(),
			fmtTime(v.Pending.ExecuteAfter),
			state,
		})
	}
	t.Render()
	return nil
}
