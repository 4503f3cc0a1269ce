// Package text renders a simulation report as plain lines, one per core.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/coresim/internal/application"
)

func Render(w io.Writer, report application.Report) error {
	_, err := io.WriteString(w, Format(report))
	return err
}

func Format(report application.Report) string {
	var b strings.Builder
	for i, run := range report.Policies {
		if i > 0 {
			b.WriteString("\n")
		}
		writePolicy(&b, run)
	}

	return b.String()
}

func writePolicy(b *strings.Builder, run application.PolicyRun) {
	fmt.Fprintf(b, "=== %s Load Balancing ===\n", run.Name)
	for i, round := range run.Rounds {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "Round %d (%d tasks):\n", round.Number, round.TaskCount)
		for _, core := range round.Cores {
			b.WriteString(CoreLine(core))
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "Total Time (Max Core Time): %dms\n", round.MakespanMS)
	}
}

// CoreLine renders a snapshot the same way domain.Core.String does.
func CoreLine(core application.CoreSnapshot) string {
	if len(core.Jobs) == 0 {
		return fmt.Sprintf("Core %d: (Total: %dms)", core.ID, core.TotalMS)
	}

	jobs := make([]string, 0, len(core.Jobs))
	for _, job := range core.Jobs {
		jobs = append(jobs, job.String())
	}

	return fmt.Sprintf("Core %d: %s (Total: %dms)", core.ID, strings.Join(jobs, ", "), core.TotalMS)
}

