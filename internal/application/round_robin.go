package application

import "github.com/bnema/coresim/internal/domain"

// RoundRobin hands jobs to cores in turn. The cursor is not reset between
// rounds.
type RoundRobin struct {
	cursor int
}

func (p *RoundRobin) Kind() domain.PolicyKind { return domain.PolicyRoundRobin }

func (p *RoundRobin) Name() string { return domain.PolicyRoundRobin.DisplayName() }

func (p *RoundRobin) AssignRound(round domain.Round, cores []*domain.Core) ([]Placement, error) {
	if len(cores) == 0 {
		return nil, ErrNoCores
	}

	placements := make([]Placement, 0, len(round.Jobs))
	for _, job := range round.Jobs {
		placements = assign(cores[p.cursor%len(cores)], job, placements)
		p.cursor = (p.cursor + 1) % len(cores)
	}

	return placements, nil
}
