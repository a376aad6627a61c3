package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// StatusRenderer renders the governance and storage state.
type StatusRenderer struct {
	out  io.Writer
	json bool
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, json bool) *StatusRenderer {
	return &StatusRenderer{out: out, json: json}
}

// Render writes the registry status.
func (r *StatusRenderer) Render(result *usecase.StatusResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	state := runningStyle.Sprint("running")
	if result.Paused {
		state = pausedStyle.Sprint("PAUSED")
	}

	fmt.Fprintf(r.out, "%s\n", headerStyle.Sprint("Registry Status"))
	fmt.Fprintf(r.out, "  State:           %s\n", state)
	fmt.Fprintf(r.out, "  Storage version: v%d\n", result.StorageVersion)
	fmt.Fprintf(r.out, "  Min delay:       %s\n", result.MinDelay)
	fmt.Fprintf(r.out, "  Modules:         %d\n", result.ModuleCount)
	fmt.Fprintf(r.out, "  Pending:         %d\n", result.PendingCount)
	fmt.Fprintf(r.out, "\n%s\n", headerStyle.Sprint("Governance"))
	fmt.Fprintf(r.out, "  Admin:           %s\n", result.Admin.Hex())
	fmt.Fprintf(r.out, "  Pending admin:   %s\n", shortAddr(result.PendingAdmin))
	fmt.Fprintf(r.out, "  Upgrade admin:   %s\n", shortAddr(result.UpgradeAdmin))
	fmt.Fprintf(r.out, "  Emergency admin: %s\n", shortAddr(result.EmergencyAdmin))
	return nil
}
