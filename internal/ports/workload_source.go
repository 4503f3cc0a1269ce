package ports

import (
	"context"

	"github.com/bnema/coresim/internal/domain"
)

type WorkloadSource interface {
	Load(ctx context.Context) ([]domain.Job, error)
}
