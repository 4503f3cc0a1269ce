package application

import (
	"fmt"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/ports"
)

// RandomAssignment drops every job on a uniformly drawn core, regardless of load.
type RandomAssignment struct {
	src ports.RandomSource
}

func (p *RandomAssignment) Kind() domain.PolicyKind { return domain.PolicyRandom }

func (p *RandomAssignment) Name() string { return domain.PolicyRandom.DisplayName() }

func (p *RandomAssignment) AssignRound(round domain.Round, cores []*domain.Core) ([]Placement, error) {
	if len(cores) == 0 {
		return nil, ErrNoCores
	}

	placements := make([]Placement, 0, len(round.Jobs))
	for _, job := range round.Jobs {
		idx := p.src.Intn(len(cores))
		if idx < 0 || idx >= len(cores) {
			return nil, fmt.Errorf("%w: %d of %d", ErrCoreOutOfRange, idx, len(cores))
		}
		placements = assign(cores[idx], job, placements)
	}

	return placements, nil
}
