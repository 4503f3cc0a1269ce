package application

import (
	"github.com/bnema/coresim/internal/domain"
	"gonum.org/v1/gonum/stat"
)

func snapshotRound(round domain.Round, cores []*domain.Core) RoundResult {
	snapshots := make([]CoreSnapshot, 0, len(cores))
	totals := make([]float64, 0, len(cores))
	for _, core := range cores {
		snapshots = append(snapshots, CoreSnapshot{
			ID:      core.ID,
			Jobs:    core.Jobs(),
			TotalMS: core.TotalMS(),
		})
		totals = append(totals, float64(core.TotalMS()))
	}

	result := RoundResult{
		Number:     round.Number,
		TaskCount:  len(round.Jobs),
		Cores:      snapshots,
		MakespanMS: domain.Makespan(cores),
	}
	if len(totals) > 0 {
		result.MeanMS = stat.Mean(totals, nil)
	}
	if len(totals) > 1 {
		result.StdDevMS = stat.StdDev(totals, nil)
	}

	return result
}
