package application

import (
	"fmt"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/bnema/coresim/internal/domain"
	"golang.org/x/exp/slices"
)

// FixedAssignment pins a job to a core.
type FixedAssignment struct {
	Job  domain.JobID
	Core domain.CoreID
}

// DefaultLeastLoadedTable is what a least-loaded choice yields for the
// default workload, keyed by round number.
var DefaultLeastLoadedTable = map[int][]FixedAssignment{
	1: {{Job: 1, Core: 1}, {Job: 2, Core: 2}, {Job: 3, Core: 3}, {Job: 4, Core: 4}},
	2: {{Job: 5, Core: 2}, {Job: 6, Core: 4}},
}

// FixedLeastLoaded replays a fixed table and never looks at core load.
type FixedLeastLoaded struct {
	table map[int][]FixedAssignment
}

func NewFixedLeastLoaded(table map[int][]FixedAssignment) *FixedLeastLoaded {
	return &FixedLeastLoaded{table: table}
}

func (p *FixedLeastLoaded) Kind() domain.PolicyKind { return domain.PolicyLeastLoaded }

func (p *FixedLeastLoaded) Name() string { return domain.PolicyLeastLoaded.DisplayName() }

func (p *FixedLeastLoaded) AssignRound(round domain.Round, cores []*domain.Core) ([]Placement, error) {
	if len(cores) == 0 {
		return nil, ErrNoCores
	}

	entries := p.table[round.Number]
	placements := make([]Placement, 0, len(entries))
	mapped := make([]domain.JobID, 0, len(entries))
	for _, entry := range entries {
		job, err := round.Find(entry.Job)
		if err != nil {
			return nil, err
		}

		idx := slices.IndexFunc(cores, func(c *domain.Core) bool { return c.ID == entry.Core })
		if idx < 0 {
			return nil, fmt.Errorf("%w: core %d for job %d", ErrCoreOutOfRange, entry.Core, entry.Job)
		}

		placements = assign(cores[idx], job, placements)
		mapped = append(mapped, job.ID)
	}

	for _, job := range round.Jobs {
		if !slices.Contains(mapped, job.ID) {
			return nil, fmt.Errorf("%w: job %d in round %d has no fixed core", domain.ErrJobNotMapped, job.ID, round.Number)
		}
	}

	return placements, nil
}

// AdaptiveLeastLoaded sends each job to the core with the smallest total,
// lowest core id first on ties.
type AdaptiveLeastLoaded struct{}

func (p *AdaptiveLeastLoaded) Kind() domain.PolicyKind { return domain.PolicyLeastLoaded }

func (p *AdaptiveLeastLoaded) Name() string {
	return "Adaptive " + domain.PolicyLeastLoaded.DisplayName()
}

type coreLoad struct {
	core *domain.Core
}

// Compare orders by total, then id. Only the popped item is mutated before it
// is put back, so the heap stays consistent.
func (c coreLoad) Compare(other queue.Item) int {
	o := other.(coreLoad)
	switch {
	case c.core.TotalMS() < o.core.TotalMS():
		return -1
	case c.core.TotalMS() > o.core.TotalMS():
		return 1
	case c.core.ID < o.core.ID:
		return -1
	case c.core.ID > o.core.ID:
		return 1
	default:
		return 0
	}
}

func (p *AdaptiveLeastLoaded) AssignRound(round domain.Round, cores []*domain.Core) ([]Placement, error) {
	if len(cores) == 0 {
		return nil, ErrNoCores
	}

	pq := queue.NewPriorityQueue(len(cores), true)
	defer pq.Dispose()

	for _, core := range cores {
		if err := pq.Put(coreLoad{core: core}); err != nil {
			return nil, fmt.Errorf("queue core %d: %w", core.ID, err)
		}
	}

	placements := make([]Placement, 0, len(round.Jobs))
	for _, job := range round.Jobs {
		items, err := pq.Get(1)
		if err != nil {
			return nil, fmt.Errorf("pick least loaded core: %w", err)
		}

		least := items[0].(coreLoad)
		placements = assign(least.core, job, placements)

		if err := pq.Put(least); err != nil {
			return nil, fmt.Errorf("requeue core %d: %w", least.core.ID, err)
		}
	}

	return placements, nil
}
