// Package prom records simulation assignments as Prometheus collectors and
// dumps them in the text exposition format.
package prom

import (
	"strconv"

	"github.com/bnema/coresim/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	registry     *prometheus.Registry
	jobsAssigned *prometheus.CounterVec
	processingMS *prometheus.CounterVec
	makespanMS   *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		jobsAssigned: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "coresim_jobs_assigned_total", Help: "Jobs placed on a core"},
			[]string{"policy", "core"},
		),
		processingMS: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "coresim_processing_ms_total", Help: "Processing time placed on a core in milliseconds"},
			[]string{"policy", "core"},
		),
		makespanMS: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "coresim_round_makespan_ms", Help: "Largest core total after a round in milliseconds"},
			[]string{"policy", "round"},
		),
	}
	r.registry.MustRegister(r.Collectors()...)

	return r
}

func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.jobsAssigned, r.processingMS, r.makespanMS}
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Recorder) JobAssigned(policy domain.PolicyKind, core domain.CoreID, job domain.Job) {
	labels := prometheus.Labels{"policy": string(policy), "core": strconv.Itoa(int(core))}
	r.jobsAssigned.With(labels).Inc()
	r.processingMS.With(labels).Add(float64(job.ProcessingMS))
}

func (r *Recorder) RoundCompleted(policy domain.PolicyKind, round int, makespanMS int) {
	r.makespanMS.WithLabelValues(string(policy), strconv.Itoa(round)).Set(float64(makespanMS))
}

// WriteTextfile replaces path atomically with the current metric values.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
