package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quotabank/internal/app"
)

const statusProgressBarWidth = 20

// FormatStatus renders the full status card for a snapshot.
func FormatStatus(snap app.Snapshot) string {
	var b strings.Builder

	b.WriteString(RenderProgress(snap.Progress, statusProgressBarWidth))
	b.WriteString("\n\n")

	headers := []string{"TODAY", "QUOTA", "LEFT", "BANK", "WEEK"}
	row := []string{
		Bold(strconv.Itoa(snap.State.TodayCount)),
		strconv.Itoa(snap.Config.DailyQuota),
		RemainingStyle(snap.Remaining).Render(strconv.Itoa(snap.Remaining)),
		StyleBlue.Render(strconv.Itoa(snap.State.WeekBank)),
		Dim(string(snap.State.WeekID)),
	}
	b.WriteString(RenderTable(headers, [][]string{row},
		AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft))

	b.WriteString("\n")
	b.WriteString(FormatCountdowns(snap))
	b.WriteString("\n")

	return RenderBox(string(snap.State.LastDate), b.String())
}

// FormatCountdowns renders the day and week countdown line.
func FormatCountdowns(snap app.Snapshot) string {
	cd := snap.Countdowns()
	return fmt.Sprintf("%s %s   %s %s",
		Dim("day ends in"), StyleFg.Render(cd.Day()),
		Dim("week ends in"), StyleFg.Render(cd.Week()))
}

// FormatIncrement renders the one-line result of an add.
func FormatIncrement(res app.IncrementResult) string {
	if res.AtQuota {
		return Warning(fmt.Sprintf("Daily quota of %d already reached.", res.Snapshot.Config.DailyQuota))
	}
	return FormatCount(res.Snapshot)
}

// FormatCount renders today's count against the quota.
func FormatCount(snap app.Snapshot) string {
	return fmt.Sprintf("%s %s  %s",
		Bold(fmt.Sprintf("%d/%d", snap.State.TodayCount, snap.Config.DailyQuota)),
		Dim("today"),
		RemainingStyle(snap.Remaining).Render(Plural(snap.Remaining, "unit")+" left"))
}

// FormatBank renders the week bank after a close-day or reset-week.
func FormatBank(snap app.Snapshot) string {
	return fmt.Sprintf("%s %s %s",
		Dim("week bank"),
		StyleBlue.Render(strconv.Itoa(snap.State.WeekBank)),
		Dim("("+string(snap.State.WeekID)+")"))
}

// FormatQuota renders the configured daily quota.
func FormatQuota(quota int) string {
	return fmt.Sprintf("%s %s", Dim("daily quota"), Bold(strconv.Itoa(quota)))
}

// FormatCleared reports a wiped store and the defaults now in effect.
func FormatCleared(snap app.Snapshot) string {
	return Success("Store cleared.") + "  " + FormatQuota(snap.Config.DailyQuota)
}
