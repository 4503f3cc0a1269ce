package domain

import (
	"fmt"
	"strings"
)

type PolicyKind string

const (
	PolicyRoundRobin  PolicyKind = "round-robin"
	PolicyLeastLoaded PolicyKind = "least-loaded"
	PolicyRandom      PolicyKind = "random"
)

// AllPolicies lists every policy in the order they are run and reported.
var AllPolicies = []PolicyKind{PolicyRoundRobin, PolicyLeastLoaded, PolicyRandom}

func (k PolicyKind) Valid() bool {
	switch k {
	case PolicyRoundRobin, PolicyLeastLoaded, PolicyRandom:
		return true
	default:
		return false
	}
}

func (k PolicyKind) DisplayName() string {
	switch k {
	case PolicyRoundRobin:
		return "Round Robin"
	case PolicyLeastLoaded:
		return "Least Loaded Core"
	case PolicyRandom:
		return "Random Assignment"
	default:
		return string(k)
	}
}

func ParsePolicyKind(raw string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "round-robin", "roundrobin", "rr":
		return PolicyRoundRobin, nil
	case "least-loaded", "leastloaded", "ll":
		return PolicyLeastLoaded, nil
	case "random", "rand":
		return PolicyRandom, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownPolicy, raw)
	}
}

type LeastLoadedMode string

const (
	// LeastLoadedFixed replays a fixed job-to-core table.
	LeastLoadedFixed LeastLoadedMode = "fixed"
	// LeastLoadedAdaptive picks the core with the smallest total, lowest id on ties.
	LeastLoadedAdaptive LeastLoadedMode = "adaptive"
)

func ParseLeastLoadedMode(raw string) (LeastLoadedMode, error) {
	switch LeastLoadedMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LeastLoadedFixed:
		return LeastLoadedFixed, nil
	case LeastLoadedAdaptive:
		return LeastLoadedAdaptive, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownLeastLoadedMode, raw)
	}
}
