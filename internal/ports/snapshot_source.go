package ports

import (
	"context"

	"github.com/bnema/gimme-omni/internal/domain"
)

// SnapshotSource fetches the payloads a report is computed from.
type SnapshotSource interface {
	FetchAgent(ctx context.Context, username string) (domain.Agent, error)
	FetchCurrentCases(ctx context.Context) ([]domain.Case, error)
	FetchAgents(ctx context.Context) ([]domain.Agent, error)
}

type SnapshotRepository interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}
