package cmd

import (
	"fmt"
	"io"

	promadapter "github.com/bnema/coresim/internal/adapters/metrics/prom"
	"github.com/bnema/coresim/internal/adapters/render/pretty"
	"github.com/bnema/coresim/internal/adapters/render/structured"
	"github.com/bnema/coresim/internal/adapters/render/text"
	"github.com/bnema/coresim/internal/adapters/tracing"
	workloadtoml "github.com/bnema/coresim/internal/adapters/workload/toml"
	"github.com/bnema/coresim/internal/application"
	"github.com/bnema/coresim/internal/ports"
	"github.com/bnema/coresim/internal/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	formatText   = "text"
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"

	serviceName = "coresim"
)

type renderFunc func(io.Writer, application.Report) error

var renderers = map[string]renderFunc{
	formatText:   text.Render,
	formatPretty: pretty.Render,
	formatJSON:   structured.RenderJSON,
	formatYAML:   structured.RenderYAML,
}

type app struct {
	settings     settings
	logger       *log.Logger
	workload     ports.WorkloadSource
	metrics      *promadapter.Recorder
	simulator    *application.SimulationService
	render       renderFunc
	clock        ports.Clock
	closeTracing tracing.Shutdown
}

func wireApp(cfg *viper.Viper, stderr io.Writer) (*app, error) {
	s, err := resolveSettings(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(stderr, s.LogLevel, s.LogFormat)
	if err != nil {
		return nil, err
	}

	loader, err := workloadtoml.NewLoader(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire workload loader: %w", err)
	}

	var traceOut io.Writer
	if s.Trace {
		traceOut = stderr
	}
	closeTracing, err := tracing.Init(traceOut, serviceName, version.Version)
	if err != nil {
		return nil, fmt.Errorf("wire tracing: %w", err)
	}

	var recorder ports.MetricsRecorder = ports.NopMetricsRecorder{}
	var prom *promadapter.Recorder
	if s.MetricsOut != "" {
		prom = promadapter.NewRecorder()
		recorder = prom
	}

	clock := ports.SystemClock{}

	return &app{
		settings:     s,
		logger:       logger,
		workload:     loader,
		metrics:      prom,
		simulator:    application.NewSimulationService(logger, recorder, clock),
		render:       renderers[s.Format],
		clock:        clock,
		closeTracing: closeTracing,
	}, nil
}
