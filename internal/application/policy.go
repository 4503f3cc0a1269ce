package application

import (
	"errors"
	"fmt"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/ports"
)

var (
	ErrNoCores          = errors.New("no cores to assign to")
	ErrCoreOutOfRange   = errors.New("core index out of range")
	ErrMissingRandom    = errors.New("random policy requires a random source")
	ErrAccountingDrift  = errors.New("core totals do not match assigned jobs")
	ErrNoRoundsToAssign = errors.New("no rounds to assign")
)

// Placement records one assignment decision.
type Placement struct {
	Job  domain.Job
	Core domain.CoreID
}

// Policy assigns the jobs of a round to cores. A Policy value lives for one
// simulation run, so state such as a round-robin cursor carries across rounds.
type Policy interface {
	Kind() domain.PolicyKind
	Name() string
	AssignRound(round domain.Round, cores []*domain.Core) ([]Placement, error)
}

type PolicyOptions struct {
	LeastLoadedMode domain.LeastLoadedMode
	Random          ports.RandomSource
}

func NewPolicy(kind domain.PolicyKind, opts PolicyOptions) (Policy, error) {
	switch kind {
	case domain.PolicyRoundRobin:
		return &RoundRobin{}, nil
	case domain.PolicyLeastLoaded:
		switch opts.LeastLoadedMode {
		case "", domain.LeastLoadedFixed:
			return NewFixedLeastLoaded(DefaultLeastLoadedTable), nil
		case domain.LeastLoadedAdaptive:
			return &AdaptiveLeastLoaded{}, nil
		default:
			return nil, fmt.Errorf("%w %q", domain.ErrUnknownLeastLoadedMode, opts.LeastLoadedMode)
		}
	case domain.PolicyRandom:
		if opts.Random == nil {
			return nil, ErrMissingRandom
		}
		return &RandomAssignment{src: opts.Random}, nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownPolicy, kind)
	}
}

func assign(core *domain.Core, job domain.Job, placements []Placement) []Placement {
	core.Assign(job)
	return append(placements, Placement{Job: job, Core: core.ID})
}
