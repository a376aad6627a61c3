package render

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shared color styles for table output
var (
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	addressStyle   = color.New(color.FgWhite)
	pendingStyle   = color.New(color.FgYellow)
	readyStyle     = color.New(color.FgGreen)
	pausedStyle    = color.New(color.FgRed, color.Bold)
	runningStyle   = color.New(color.FgGreen)
	timestampStyle = color.New(color.Faint)
)

var titleCaser = cases.Title(language.English)

// title renders a column header in title case.
func title(s string) string {
	return titleCaser.String(s)
}

// shortAddr abbreviates an address for table cells; the zero address reads
// as unset.
func shortAddr(addr common.Address) string {
	if addr == (common.Address{}) {
		return "-"
	}
	hex := addr.Hex()
	return hex[:10] + "…" + hex[len(hex)-4:]
}

// fmtTime renders timestamps consistently across tables.
func fmtTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}
