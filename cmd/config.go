package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	workloadtoml "github.com/bnema/coresim/internal/adapters/workload/toml"
	"github.com/bnema/coresim/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "CORESIM"

	keySeed        = "seed"
	keyPolicies    = "policies"
	keyLeastLoaded = "least_loaded"
	keyFormat      = "format"
	keyWorkload    = workloadtoml.PathKey
	keyMetricsOut  = "metrics_out"
	keyTrace       = "trace"
	keyLogLevel    = "log.level"
	keyLogFormat   = "log.format"
)

var (
	errUnknownFormat    = errors.New("unknown output format")
	errUnknownLogFormat = errors.New("unknown log format")
)

// flagKeys maps command-line flags onto settings keys.
var flagKeys = map[string]string{
	"seed":         keySeed,
	"policy":       keyPolicies,
	"least-loaded": keyLeastLoaded,
	"format":       keyFormat,
	"workload":     keyWorkload,
	"metrics-out":  keyMetricsOut,
	"trace":        keyTrace,
	"log-level":    keyLogLevel,
	"log-format":   keyLogFormat,
}

type settings struct {
	Seed            int64
	SeedSet         bool
	Policies        []domain.PolicyKind
	LeastLoadedMode domain.LeastLoadedMode
	Format          string
	MetricsOut      string
	Trace           bool
	LogLevel        string
	LogFormat       string
}

// loadSettings layers flags over CORESIM_* variables over
// $HOME/.config/coresim/config.toml.
func loadSettings(cfg *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := cfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ".config", "coresim"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func resolveSettings(cfg *viper.Viper) (settings, error) {
	s := settings{
		Seed:       cfg.GetInt64(keySeed),
		SeedSet:    cfg.IsSet(keySeed),
		Format:     strings.ToLower(strings.TrimSpace(cfg.GetString(keyFormat))),
		MetricsOut: strings.TrimSpace(cfg.GetString(keyMetricsOut)),
		Trace:      cfg.GetBool(keyTrace),
		LogLevel:   cfg.GetString(keyLogLevel),
		LogFormat:  strings.ToLower(strings.TrimSpace(cfg.GetString(keyLogFormat))),
	}

	mode, err := domain.ParseLeastLoadedMode(cfg.GetString(keyLeastLoaded))
	if err != nil {
		return settings{}, err
	}
	s.LeastLoadedMode = mode

	for _, raw := range splitList(cfg.GetStringSlice(keyPolicies)) {
		kind, err := domain.ParsePolicyKind(raw)
		if err != nil {
			return settings{}, err
		}
		s.Policies = append(s.Policies, kind)
	}

	if s.Format == "" {
		s.Format = formatText
	}
	if _, ok := renderers[s.Format]; !ok {
		return settings{}, fmt.Errorf("%w %q", errUnknownFormat, s.Format)
	}

	switch s.LogFormat {
	case "", "text", "json":
	default:
		return settings{}, fmt.Errorf("%w %q", errUnknownLogFormat, s.LogFormat)
	}

	return s, nil
}

// splitList flattens comma separated entries, as given in env variables.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
