package pretty

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/coresim/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

func renderView(report application.Report, s styles) string {
	lines := []string{
		s.title.Render("Core Load Balancing"),
		s.header.Render(fmt.Sprintf("run: %s  seed: %d  least-loaded: %s", report.RunID, report.Seed, report.LeastLoadedMode)),
	}

	if len(report.Policies) == 0 {
		lines = append(lines, s.empty.Render("No policies were run."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, run := range report.Policies {
		lines = append(lines, s.section.Render(renderPolicy(run, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPolicy(run application.PolicyRun, s styles) string {
	parts := []string{s.policy.Render(run.Name)}
	for _, round := range run.Rounds {
		parts = append(parts, renderRound(round, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRound(round application.RoundResult, s styles) string {
	lines := []string{s.round.Render(fmt.Sprintf("Round %d (%d tasks)", round.Number, round.TaskCount))}
	for _, core := range round.Cores {
		lines = append(lines, coreLine(core, round.MakespanMS, s))
	}

	summary := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.makespan.Render(fmt.Sprintf("makespan %dms", round.MakespanMS)),
		"  ",
		s.statsMeta.Render(fmt.Sprintf("mean %.2fms  stddev %.2fms", round.MeanMS, round.StdDevMS)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, append(lines, summary)...)
}

func coreLine(core application.CoreSnapshot, makespanMS int, s styles) string {
	share := loadPercent(core.TotalMS, makespanMS)
	totalStyle := lipgloss.NewStyle().Foreground(interpolateColor(share, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.coreKey.Render(fmt.Sprintf("Core %d", core.ID)),
		" ",
		renderLoadBar(share, barWidth, s),
		" ",
		totalStyle.Render(fmt.Sprintf("%3dms", core.TotalMS)),
		" ",
		s.jobs.Render(jobList(core)),
	)
}

func jobList(core application.CoreSnapshot) string {
	if len(core.Jobs) == 0 {
		return "idle"
	}

	parts := make([]string, 0, len(core.Jobs))
	for _, job := range core.Jobs {
		parts = append(parts, job.String())
	}

	return strings.Join(parts, ", ")
}

// loadPercent is the core total relative to the makespan.
func loadPercent(totalMS, makespanMS int) float64 {
	if makespanMS <= 0 {
		return 0
	}

	return clampPercent(100 * float64(totalMS) / float64(makespanMS))
}

func renderLoadBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 256-colour greyscale ramp, 240 at min
// to 255 at max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}
