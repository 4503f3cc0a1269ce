package domain

import "errors"

var (
	ErrEmptyWorkload          = errors.New("workload has no jobs")
	ErrDuplicateJob           = errors.New("duplicate job id")
	ErrJobNotInRound          = errors.New("job not found in round")
	ErrJobNotMapped           = errors.New("job has no fixed assignment")
	ErrUnknownPolicy          = errors.New("unknown policy")
	ErrUnknownLeastLoadedMode = errors.New("unknown least-loaded mode")
)
