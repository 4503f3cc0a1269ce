package domain

import (
	"fmt"
	"strings"
)

type JobID int

// Job is a unit of work with a fixed processing cost in milliseconds.
type Job struct {
	ID           JobID `json:"id" yaml:"id"`
	ProcessingMS int   `json:"processing_ms" yaml:"processing_ms"`
}

func (j Job) String() string {
	return fmt.Sprintf("Job %d (%dms)", j.ID, j.ProcessingMS)
}

func (j Job) Validate() error {
	if j.ID <= 0 {
		return fmt.Errorf("job id must be positive, got %d", j.ID)
	}
	if j.ProcessingMS <= 0 {
		return fmt.Errorf("job %d: processing time must be positive, got %dms", j.ID, j.ProcessingMS)
	}

	return nil
}

func ValidateJobs(jobs []Job) error {
	if len(jobs) == 0 {
		return ErrEmptyWorkload
	}

	seen := make(map[JobID]struct{}, len(jobs))
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if _, ok := seen[job.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateJob, job.ID)
		}
		seen[job.ID] = struct{}{}
	}

	return nil
}

func TotalProcessingMS(jobs []Job) int {
	total := 0
	for _, job := range jobs {
		total += job.ProcessingMS
	}

	return total
}

func joinJobs(jobs []Job) string {
	parts := make([]string, 0, len(jobs))
	for _, job := range jobs {
		parts = append(parts, job.String())
	}

	return strings.Join(parts, ", ")
}
