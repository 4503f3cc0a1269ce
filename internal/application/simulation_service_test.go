package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/ports"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type recordingMetrics struct {
	assigned map[domain.PolicyKind]int
	rounds   map[domain.PolicyKind][]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		assigned: map[domain.PolicyKind]int{},
		rounds:   map[domain.PolicyKind][]int{},
	}
}

func (m *recordingMetrics) JobAssigned(policy domain.PolicyKind, _ domain.CoreID, _ domain.Job) {
	m.assigned[policy]++
}

func (m *recordingMetrics) RoundCompleted(policy domain.PolicyKind, _ int, makespanMS int) {
	m.rounds[policy] = append(m.rounds[policy], makespanMS)
}

func newTestService(picks []int, metrics ports.MetricsRecorder) *SimulationService {
	return NewSimulationService(nil, metrics, fixedClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)},
		WithRandomFactory(func(int64) ports.RandomSource { return &scriptedRandom{picks: picks} }),
		WithRunIDs(func() string { return "run-1" }),
	)
}

func TestSimulationRunsAllPoliciesInOrder(t *testing.T) {
	svc := newTestService([]int{2, 2, 0, 3, 1, 2}, nil)

	report, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs(), Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, int64(7), report.Seed)
	assert.Equal(t, domain.LeastLoadedFixed, report.LeastLoadedMode)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC), report.GeneratedAt)

	require.Len(t, report.Policies, 3)
	assert.Equal(t, domain.PolicyRoundRobin, report.Policies[0].Kind)
	assert.Equal(t, domain.PolicyLeastLoaded, report.Policies[1].Kind)
	assert.Equal(t, domain.PolicyRandom, report.Policies[2].Kind)

	rr := report.Policies[0]
	require.Len(t, rr.Rounds, 2)
	assert.Equal(t, 4, rr.Rounds[0].TaskCount)
	assert.Equal(t, []int{7, 2, 5, 3}, rr.Rounds[0].Totals())
	assert.Equal(t, 7, rr.Rounds[0].MakespanMS)
	assert.Equal(t, 2, rr.Rounds[1].TaskCount)
	assert.Equal(t, []int{13, 3, 5, 3}, rr.Rounds[1].Totals())
	assert.Equal(t, 13, rr.Rounds[1].MakespanMS)

	ll := report.Policies[1]
	assert.Equal(t, []int{7, 2, 5, 3}, ll.Rounds[0].Totals())
	assert.Equal(t, 7, ll.Rounds[0].MakespanMS)
	assert.Equal(t, []int{7, 8, 5, 4}, ll.Rounds[1].Totals())
	assert.Equal(t, 8, ll.Rounds[1].MakespanMS)

	random := report.Policies[2]
	assert.Equal(t, []int{5, 0, 9, 3}, random.Rounds[0].Totals())
	assert.Equal(t, []int{5, 6, 10, 3}, random.Rounds[1].Totals())
	assert.Equal(t, 10, random.Rounds[1].MakespanMS)
}

func TestSimulationSnapshotsAreNotAliased(t *testing.T) {
	svc := newTestService([]int{0}, nil)

	report, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs(), Policies: []domain.PolicyKind{domain.PolicyRoundRobin}})
	require.NoError(t, err)

	first := report.Policies[0].Rounds[0].Cores[0]
	assert.Equal(t, []domain.Job{{ID: 1, ProcessingMS: 7}}, first.Jobs)
	assert.Equal(t, 7, first.TotalMS)
}

func TestSimulationConservesJobs(t *testing.T) {
	for _, mode := range []domain.LeastLoadedMode{domain.LeastLoadedFixed, domain.LeastLoadedAdaptive} {
		svc := NewSimulationService(nil, nil, nil)
		report, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs(), Seed: 99, LeastLoadedMode: mode})
		require.NoError(t, err)

		for _, run := range report.Policies {
			assigned := 0
			seen := map[domain.JobID]int{}
			for i, round := range run.Rounds {
				assigned += domain.TotalProcessingMS(domain.SplitRounds(defaultJobs())[i].Jobs)

				sum := 0
				for _, total := range round.Totals() {
					sum += total
					assert.LessOrEqual(t, total, round.MakespanMS)
				}
				assert.Equal(t, assigned, sum, "%s round %d", run.Kind, round.Number)
				assert.Contains(t, round.Totals(), round.MakespanMS)
			}

			for _, core := range run.Rounds[len(run.Rounds)-1].Cores {
				for _, job := range core.Jobs {
					seen[job.ID]++
				}
			}
			assert.Len(t, seen, len(defaultJobs()), run.Kind)
			for id, count := range seen {
				assert.Equal(t, 1, count, "%s job %d", run.Kind, id)
			}
		}
	}
}

func TestSimulationSameSeedIsReproducible(t *testing.T) {
	svc := NewSimulationService(nil, nil, nil)
	cmd := SimulateCommand{Jobs: defaultJobs(), Seed: 42, Policies: []domain.PolicyKind{domain.PolicyRandom}}

	first, err := svc.Run(context.Background(), cmd)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, first.Policies, second.Policies)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSimulationAdaptiveMode(t *testing.T) {
	svc := newTestService([]int{0}, nil)

	report, err := svc.Run(context.Background(), SimulateCommand{
		Jobs:            defaultJobs(),
		Policies:        []domain.PolicyKind{domain.PolicyLeastLoaded},
		LeastLoadedMode: domain.LeastLoadedAdaptive,
	})
	require.NoError(t, err)

	require.Len(t, report.Policies, 1)
	assert.Equal(t, "Adaptive Least Loaded Core", report.Policies[0].Name)
	assert.Equal(t, domain.LeastLoadedAdaptive, report.LeastLoadedMode)
	assert.Equal(t, []int{7, 8, 5, 4}, report.Policies[0].Rounds[1].Totals())
}

func TestSimulationPolicySubsetKeepsCanonicalOrder(t *testing.T) {
	svc := newTestService([]int{1}, nil)

	report, err := svc.Run(context.Background(), SimulateCommand{
		Jobs:     defaultJobs(),
		Policies: []domain.PolicyKind{domain.PolicyRandom, domain.PolicyRoundRobin, domain.PolicyRandom},
	})
	require.NoError(t, err)

	require.Len(t, report.Policies, 2)
	assert.Equal(t, domain.PolicyRoundRobin, report.Policies[0].Kind)
	assert.Equal(t, domain.PolicyRandom, report.Policies[1].Kind)
}

func TestSimulationRoundStats(t *testing.T) {
	svc := newTestService([]int{0}, nil)

	report, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs(), Policies: []domain.PolicyKind{domain.PolicyRoundRobin}})
	require.NoError(t, err)

	round := report.Policies[0].Rounds[0]
	assert.InDelta(t, 4.25, round.MeanMS, 1e-9)
	assert.InDelta(t, 2.2174, round.StdDevMS, 1e-3)
}

func TestSimulationRecordsMetrics(t *testing.T) {
	metrics := newRecordingMetrics()
	svc := newTestService([]int{3}, metrics)

	_, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs()})
	require.NoError(t, err)

	for _, kind := range domain.AllPolicies {
		assert.Equal(t, 6, metrics.assigned[kind], kind)
		assert.Len(t, metrics.rounds[kind], 2, kind)
	}
	assert.Equal(t, []int{7, 13}, metrics.rounds[domain.PolicyRoundRobin])
	assert.Equal(t, []int{7, 8}, metrics.rounds[domain.PolicyLeastLoaded])
	assert.Equal(t, []int{17, 24}, metrics.rounds[domain.PolicyRandom])
}

func TestSimulationLogsPolicyRuns(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	svc := NewSimulationService(logger, nil, nil,
		WithRandomFactory(func(int64) ports.RandomSource { return &scriptedRandom{picks: []int{0}} }),
	)

	_, err := svc.Run(context.Background(), SimulateCommand{Jobs: defaultJobs()})
	require.NoError(t, err)

	completed := 0
	assignments := 0
	for _, entry := range hook.AllEntries() {
		switch entry.Message {
		case "policy run complete":
			completed++
			assert.Equal(t, log.InfoLevel, entry.Level)
		case "job assigned":
			assignments++
			assert.Contains(t, entry.Data, "core")
		}
	}
	assert.Equal(t, 3, completed)
	assert.Equal(t, 18, assignments)
}

func TestSimulationFixedMappingFailureAbortsRun(t *testing.T) {
	svc := newTestService([]int{0}, nil)
	jobs := []domain.Job{
		{ID: 10, ProcessingMS: 1},
		{ID: 11, ProcessingMS: 1},
		{ID: 12, ProcessingMS: 1},
		{ID: 13, ProcessingMS: 1},
	}

	_, err := svc.Run(context.Background(), SimulateCommand{Jobs: jobs})
	require.ErrorIs(t, err, domain.ErrJobNotInRound)
	assert.ErrorContains(t, err, "run least-loaded policy: round 1")
}

func TestSimulationValidatesCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     SimulateCommand
		wantErr error
	}{
		{name: "empty workload", cmd: SimulateCommand{}, wantErr: domain.ErrEmptyWorkload},
		{name: "duplicate job", cmd: SimulateCommand{Jobs: []domain.Job{{ID: 1, ProcessingMS: 1}, {ID: 1, ProcessingMS: 1}}}, wantErr: domain.ErrDuplicateJob},
		{name: "unknown policy", cmd: SimulateCommand{Jobs: defaultJobs(), Policies: []domain.PolicyKind{"p2c"}}, wantErr: domain.ErrUnknownPolicy},
		{name: "unknown mode", cmd: SimulateCommand{Jobs: defaultJobs(), LeastLoadedMode: "greedy"}, wantErr: domain.ErrUnknownLeastLoadedMode},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewSimulationService(nil, nil, nil).Run(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSimulationHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService([]int{0}, nil).Run(ctx, SimulateCommand{Jobs: defaultJobs()})
	assert.ErrorIs(t, err, context.Canceled)
}
