package prom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/ports"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.MetricsRecorder = (*Recorder)(nil)

func TestRecorderCountsAssignments(t *testing.T) {
	r := NewRecorder()

	r.JobAssigned(domain.PolicyRoundRobin, 1, domain.Job{ID: 1, ProcessingMS: 7})
	r.JobAssigned(domain.PolicyRoundRobin, 1, domain.Job{ID: 5, ProcessingMS: 6})
	r.JobAssigned(domain.PolicyRandom, 2, domain.Job{ID: 2, ProcessingMS: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.jobsAssigned.WithLabelValues("round-robin", "1")))
	assert.Equal(t, 13.0, testutil.ToFloat64(r.processingMS.WithLabelValues("round-robin", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.jobsAssigned.WithLabelValues("random", "2")))
}

func TestRecorderKeepsLatestMakespan(t *testing.T) {
	r := NewRecorder()

	r.RoundCompleted(domain.PolicyLeastLoaded, 1, 7)
	r.RoundCompleted(domain.PolicyLeastLoaded, 2, 8)
	r.RoundCompleted(domain.PolicyLeastLoaded, 2, 9)

	assert.Equal(t, 7.0, testutil.ToFloat64(r.makespanMS.WithLabelValues("least-loaded", "1")))
	assert.Equal(t, 9.0, testutil.ToFloat64(r.makespanMS.WithLabelValues("least-loaded", "2")))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.JobAssigned(domain.PolicyRoundRobin, 3, domain.Job{ID: 3, ProcessingMS: 5})
	r.RoundCompleted(domain.PolicyRoundRobin, 1, 7)

	path := filepath.Join(t.TempDir(), "coresim.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, `coresim_jobs_assigned_total{core="3",policy="round-robin"} 1`)
	assert.Contains(t, content, `coresim_processing_ms_total{core="3",policy="round-robin"} 5`)
	assert.Contains(t, content, `coresim_round_makespan_ms{policy="round-robin",round="1"} 7`)
}
