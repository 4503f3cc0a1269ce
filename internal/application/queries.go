package application

import (
	"time"

	"github.com/bnema/coresim/internal/domain"
)

type CoreSnapshot struct {
	ID      domain.CoreID `json:"id" yaml:"id"`
	Jobs    []domain.Job  `json:"jobs" yaml:"jobs"`
	TotalMS int           `json:"total_ms" yaml:"total_ms"`
}

type RoundResult struct {
	Number     int            `json:"number" yaml:"number"`
	TaskCount  int            `json:"task_count" yaml:"task_count"`
	Cores      []CoreSnapshot `json:"cores" yaml:"cores"`
	MakespanMS int            `json:"makespan_ms" yaml:"makespan_ms"`
	MeanMS     float64        `json:"mean_ms" yaml:"mean_ms"`
	StdDevMS   float64        `json:"stddev_ms" yaml:"stddev_ms"`
}

type PolicyRun struct {
	Kind   domain.PolicyKind `json:"kind" yaml:"kind"`
	Name   string            `json:"name" yaml:"name"`
	Rounds []RoundResult     `json:"rounds" yaml:"rounds"`
}

type Report struct {
	RunID           string                 `json:"run_id" yaml:"run_id"`
	Seed            int64                  `json:"seed" yaml:"seed"`
	LeastLoadedMode domain.LeastLoadedMode `json:"least_loaded_mode" yaml:"least_loaded_mode"`
	GeneratedAt     time.Time              `json:"generated_at" yaml:"generated_at"`
	Policies        []PolicyRun            `json:"policies" yaml:"policies"`
}

// Totals returns the core totals of a round in core order.
func (r RoundResult) Totals() []int {
	totals := make([]int, 0, len(r.Cores))
	for _, core := range r.Cores {
		totals = append(totals, core.TotalMS)
	}

	return totals
}
