package application

import (
	"fmt"

	"github.com/bnema/coresim/internal/domain"
)

type SimulateCommand struct {
	Jobs []domain.Job
	// Policies to run; empty means all of them. They always run in
	// domain.AllPolicies order.
	Policies        []domain.PolicyKind
	LeastLoadedMode domain.LeastLoadedMode
	Seed            int64
}

func (c SimulateCommand) Validate() error {
	if err := domain.ValidateJobs(c.Jobs); err != nil {
		return fmt.Errorf("validate workload: %w", err)
	}

	for _, kind := range c.Policies {
		if !kind.Valid() {
			return fmt.Errorf("%w %q", domain.ErrUnknownPolicy, kind)
		}
	}

	switch c.LeastLoadedMode {
	case "", domain.LeastLoadedFixed, domain.LeastLoadedAdaptive:
	default:
		return fmt.Errorf("%w %q", domain.ErrUnknownLeastLoadedMode, c.LeastLoadedMode)
	}

	return nil
}

// orderedPolicies returns the requested policies deduplicated and in
// canonical order.
func (c SimulateCommand) orderedPolicies() []domain.PolicyKind {
	if len(c.Policies) == 0 {
		return append([]domain.PolicyKind(nil), domain.AllPolicies...)
	}

	out := make([]domain.PolicyKind, 0, len(c.Policies))
	for _, kind := range domain.AllPolicies {
		for _, requested := range c.Policies {
			if requested == kind {
				out = append(out, kind)
				break
			}
		}
	}

	return out
}
