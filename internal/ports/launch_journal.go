package ports

import (
	"context"

	"github.com/bnema/bonita-cli/internal/domain"
)

// LaunchJournal is an append-only local record of workflow actions.
type LaunchJournal interface {
	Append(ctx context.Context, record domain.LaunchRecord) error
	List(ctx context.Context) ([]domain.LaunchRecord, error)
}
