package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/timer"
)

const progressWidth = 30

// FormatTimer renders the countdown panel shown by the timer TUI.
func FormatTimer(snap timer.Snapshot) string {
	style := ModeStyle(snap.Mode)

	var b strings.Builder
	b.WriteString(style.Bold(true).Render(strings.ToUpper(ModeLabel(snap.Mode))))
	b.WriteString("\n\n")
	b.WriteString(style.Bold(true).Render(FormatClock(snap.RemainingSeconds)))
	b.WriteString("\n\n")
	b.WriteString(RenderProgress(snap.Progress, progressWidth, style))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %s  %s\n",
		StatusLabel(snap.Status),
		Dim("·"),
		SoundLabel(snap.SoundEnabled))
	fmt.Fprintf(&b, "%s %d  %s %d",
		Dim("work"), snap.CompletedWorkIntervals,
		Dim("break"), snap.CompletedBreakIntervals)
	return RenderBox("", b.String())
}

// StatusLabel renders a timer status.
func StatusLabel(status domain.TimerStatus) string {
	switch status {
	case domain.StatusRunning:
		return StyleGreen.Render("▶ Running")
	case domain.StatusPaused:
		return StyleYellow.Render("⏸ Paused")
	default:
		return StyleDim.Render("■ Idle")
	}
}

func SoundLabel(enabled bool) string {
	if enabled {
		return StyleFg.Render("♪ Sound on")
	}
	return StyleDim.Render("♪ Sound off")
}

// FormatStats renders the counters and derived totals for the stats command.
func FormatStats(stats domain.TimerStats, d domain.Durations) string {
	rows := [][]string{
		{"Work intervals", fmt.Sprintf("%d", stats.CompletedWorkIntervals)},
		{"Break intervals", fmt.Sprintf("%d", stats.CompletedBreakIntervals)},
		{"Focused", FormatMinutes(stats.FocusedMinutes(d))},
		{"Rested", FormatMinutes(stats.RestedMinutes(d))},
		{"Total", fmt.Sprintf("%.1fh", stats.TotalHours(d))},
		{"Sound", onOff(stats.SoundEnabled)},
	}

	var b strings.Builder
	for i, row := range rows {
		fmt.Fprintf(&b, "%-16s %s", Dim(row[0]), Bold(row[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return RenderBox("Statistics", b.String())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
