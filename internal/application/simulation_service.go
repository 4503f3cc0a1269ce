package application

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/idgen"
	"github.com/bnema/coresim/internal/ports"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/bnema/coresim/internal/application"

// RandomFactory builds the single random source used by one run.
type RandomFactory func(seed int64) ports.RandomSource

func MathRandFactory(seed int64) ports.RandomSource {
	return rand.New(rand.NewSource(seed))
}

type SimulationService struct {
	log       log.FieldLogger
	metrics   ports.MetricsRecorder
	clock     ports.Clock
	newRandom RandomFactory
	newRunID  func() string
}

type SimulationOption func(*SimulationService)

func WithRandomFactory(f RandomFactory) SimulationOption {
	return func(s *SimulationService) {
		if f != nil {
			s.newRandom = f
		}
	}
}

func WithRunIDs(f func() string) SimulationOption {
	return func(s *SimulationService) {
		if f != nil {
			s.newRunID = f
		}
	}
}

func NewSimulationService(logger log.FieldLogger, metrics ports.MetricsRecorder, clock ports.Clock, opts ...SimulationOption) *SimulationService {
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	if metrics == nil {
		metrics = ports.NopMetricsRecorder{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &SimulationService{
		log:       logger,
		metrics:   metrics,
		clock:     clock,
		newRandom: MathRandFactory,
		newRunID:  idgen.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the requested policies one after another, each against a fresh
// set of cores, and snapshots the cores after every round.
func (s *SimulationService) Run(ctx context.Context, cmd SimulateCommand) (Report, error) {
	if err := cmd.Validate(); err != nil {
		return Report{}, err
	}

	rounds := domain.SplitRounds(cmd.Jobs)
	if len(rounds) == 0 {
		return Report{}, ErrNoRoundsToAssign
	}

	mode := cmd.LeastLoadedMode
	if mode == "" {
		mode = domain.LeastLoadedFixed
	}

	report := Report{
		RunID:           s.newRunID(),
		Seed:            cmd.Seed,
		LeastLoadedMode: mode,
		GeneratedAt:     s.clock.Now(),
	}

	logger := s.log.WithFields(log.Fields{
		"run_id": report.RunID,
		"seed":   cmd.Seed,
	})

	ctx, span := otel.Tracer(tracerName).Start(ctx, "simulation.run", trace.WithAttributes(
		attribute.String("run.id", report.RunID),
		attribute.Int64("run.seed", cmd.Seed),
		attribute.Int("run.jobs", len(cmd.Jobs)),
	))
	defer span.End()

	random := s.newRandom(cmd.Seed)
	for _, kind := range cmd.orderedPolicies() {
		policy, err := NewPolicy(kind, PolicyOptions{LeastLoadedMode: mode, Random: random})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Report{}, fmt.Errorf("build %s policy: %w", kind, err)
		}

		run, err := s.runPolicy(ctx, logger, policy, rounds)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Report{}, fmt.Errorf("run %s policy: %w", kind, err)
		}

		report.Policies = append(report.Policies, run)
	}

	span.SetStatus(codes.Ok, "")
	return report, nil
}

func (s *SimulationService) runPolicy(ctx context.Context, logger log.FieldLogger, policy Policy, rounds []domain.Round) (PolicyRun, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "policy.run", trace.WithAttributes(
		attribute.String("policy.kind", string(policy.Kind())),
		attribute.String("policy.name", policy.Name()),
	))
	defer span.End()

	cores := domain.NewCores()
	run := PolicyRun{Kind: policy.Kind(), Name: policy.Name()}
	assignedMS := 0

	for _, round := range rounds {
		if err := ctx.Err(); err != nil {
			return PolicyRun{}, err
		}

		result, err := s.runRound(ctx, logger, policy, round, cores, &assignedMS)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return PolicyRun{}, fmt.Errorf("round %d: %w", round.Number, err)
		}

		run.Rounds = append(run.Rounds, result)
	}

	last := run.Rounds[len(run.Rounds)-1]
	logger.WithFields(log.Fields{
		"policy":      policy.Kind(),
		"makespan_ms": last.MakespanMS,
		"rounds":      len(run.Rounds),
	}).Info("policy run complete")

	return run, nil
}

func (s *SimulationService) runRound(ctx context.Context, logger log.FieldLogger, policy Policy, round domain.Round, cores []*domain.Core, assignedMS *int) (RoundResult, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "policy.round", trace.WithAttributes(
		attribute.String("policy.kind", string(policy.Kind())),
		attribute.Int("round.number", round.Number),
		attribute.Int("round.tasks", len(round.Jobs)),
	))
	defer span.End()

	placements, err := policy.AssignRound(round, cores)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return RoundResult{}, err
	}

	for _, p := range placements {
		*assignedMS += p.Job.ProcessingMS
		s.metrics.JobAssigned(policy.Kind(), p.Core, p.Job)
		logger.WithFields(log.Fields{
			"policy": policy.Kind(),
			"round":  round.Number,
			"job":    p.Job.ID,
			"cost":   p.Job.ProcessingMS,
			"core":   p.Core,
		}).Debug("job assigned")
	}

	if len(placements) != len(round.Jobs) {
		return RoundResult{}, fmt.Errorf("%w: %d placements for %d jobs", ErrAccountingDrift, len(placements), len(round.Jobs))
	}

	result := snapshotRound(round, cores)
	if sum := sumInts(result.Totals()); sum != *assignedMS {
		return RoundResult{}, fmt.Errorf("%w: cores hold %dms, assigned %dms", ErrAccountingDrift, sum, *assignedMS)
	}

	s.metrics.RoundCompleted(policy.Kind(), round.Number, result.MakespanMS)
	span.SetAttributes(attribute.Int("round.makespan_ms", result.MakespanMS))
	span.SetStatus(codes.Ok, "")

	return result, nil
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}

	return total
}
