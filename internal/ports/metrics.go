package ports

import "github.com/bnema/coresim/internal/domain"

type MetricsRecorder interface {
	JobAssigned(policy domain.PolicyKind, core domain.CoreID, job domain.Job)
	RoundCompleted(policy domain.PolicyKind, round int, makespanMS int)
}

type NopMetricsRecorder struct{}

func (NopMetricsRecorder) JobAssigned(domain.PolicyKind, domain.CoreID, domain.Job) {}

func (NopMetricsRecorder) RoundCompleted(domain.PolicyKind, int, int) {}
