package toml

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/coresim/internal/domain"
	"github.com/bnema/coresim/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// PathKey is the settings key naming an alternative workload file.
const PathKey = "workload.path"

//go:embed default_workload.toml
var defaultWorkload []byte

type Loader struct {
	path string
}

var _ ports.WorkloadSource = (*Loader)(nil)

// NewLoader reads the workload path from cfg. An empty path selects the
// embedded default workload.
func NewLoader(cfg *viper.Viper) (*Loader, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := strings.TrimSpace(cfg.GetString(PathKey))
	if path == "" {
		return &Loader{}, nil
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path}, nil
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultWorkload
	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read workload file: %w", err)
		}
		data = raw
	}

	file, err := decode(data)
	if err != nil {
		return nil, err
	}

	jobs := fromSchema(file)
	if err := domain.ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("validate workload: %w", err)
	}

	return jobs, nil
}

func decode(data []byte) (fileSchema, error) {
	var file fileSchema
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&file); err != nil {
		return fileSchema{}, fmt.Errorf("decode workload file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve workload path: %w", err)
	}

	return abs, nil
}
