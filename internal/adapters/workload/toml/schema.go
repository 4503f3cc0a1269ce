package toml

import (
	"fmt"

	"github.com/bnema/coresim/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	Jobs    []jobSchema `toml:"jobs"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported workload schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type jobSchema struct {
	ID           int `toml:"id"`
	ProcessingMS int `toml:"processing_ms"`
}

func fromSchema(file fileSchema) []domain.Job {
	jobs := make([]domain.Job, 0, len(file.Jobs))
	for _, entry := range file.Jobs {
		jobs = append(jobs, domain.Job{ID: domain.JobID(entry.ID), ProcessingMS: entry.ProcessingMS})
	}

	return jobs
}
