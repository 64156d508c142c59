package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quotabank/internal/settings"
)

// FormatSettings renders the effective settings and where they come from.
func FormatSettings(path string, exists bool, s settings.Settings) string {
	var b strings.Builder

	status := "using defaults (no settings file)"
	if exists {
		status = "loaded"
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("settings file"), path)
	fmt.Fprintf(&b, "%s %s\n\n", Dim("status"), status)

	b.WriteString(RenderTable(
		[]string{"SETTING", "VALUE"},
		[][]string{
			{"db_path", s.DBPath},
			{"tick_interval_ms", strconv.Itoa(s.TickIntervalMs)},
			{"log_use_cases", strconv.FormatBool(s.LogUseCases)},
		},
	))
	return b.String()
}
