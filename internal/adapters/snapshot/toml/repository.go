// Package toml stores captured snapshots as versioned TOML files so a
// report can be replayed offline.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	snapshotFileMode = 0o600
	snapshotDirMode  = 0o700
	tempFilePattern  = ".snapshot-*.toml.tmp"
)

type Repository struct {
	path string
}

var _ ports.SnapshotRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("snapshot path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}

	return &Repository{path: filepath.Clean(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, fmt.Errorf("%s: %w", r.path, domain.ErrSnapshotNotFound)
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Snapshot{}, err
	}

	return fromSchema(file)
}

func (r *Repository) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := toSchema(snapshot)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode snapshot file: %w", err)
	}

	return writeAtomic(r.path, data)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), snapshotDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp snapshot file: %w", err)
	}

	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	cleanup = false

	return nil
}

func toSchema(snapshot domain.Snapshot) fileSchema {
	cases := make([]caseSchema, 0, len(snapshot.Cases))
	for _, c := range snapshot.Cases {
		cases = append(cases, caseSchema{
			Subject:   c.Subject,
			CreatedAt: string(c.CreatedAt),
			Category:  c.Category,
			Origin:    c.Origin,
			Language:  c.Language,
		})
	}

	peers := make([]agentSchema, 0, len(snapshot.Peers))
	for _, peer := range snapshot.Peers {
		peers = append(peers, toAgentSchema(peer))
	}

	capturedAt := ""
	if !snapshot.CapturedAt.IsZero() {
		capturedAt = snapshot.CapturedAt.UTC().Format(time.RFC3339Nano)
	}

	return fileSchema{
		Version:    currentSchemaVersion,
		CapturedAt: capturedAt,
		Self:       toAgentSchema(snapshot.Self),
		Cases:      cases,
		Peers:      peers,
	}
}

func fromSchema(file fileSchema) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{
		Self:  fromAgentSchema(file.Self),
		Cases: make([]domain.Case, 0, len(file.Cases)),
		Peers: make([]domain.Agent, 0, len(file.Peers)),
	}

	if file.CapturedAt != "" {
		capturedAt, err := time.Parse(time.RFC3339Nano, file.CapturedAt)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode captured_at: %w", err)
		}
		snapshot.CapturedAt = capturedAt.UTC()
	}

	for _, c := range file.Cases {
		snapshot.Cases = append(snapshot.Cases, domain.Case{
			Subject:   c.Subject,
			CreatedAt: domain.TimePoint(c.CreatedAt),
			Category:  c.Category,
			Origin:    c.Origin,
			Language:  c.Language,
		})
	}

	for _, peer := range file.Peers {
		snapshot.Peers = append(snapshot.Peers, fromAgentSchema(peer))
	}

	return snapshot, nil
}

func toAgentSchema(agent domain.Agent) agentSchema {
	return agentSchema{
		Username:       agent.Username,
		State:          string(agent.State),
		Skills:         agent.Skills,
		LastContactEnd: string(agent.LastContactEnd),
	}
}

func fromAgentSchema(agent agentSchema) domain.Agent {
	return domain.Agent{
		Username:       agent.Username,
		State:          domain.AgentState(agent.State),
		Skills:         agent.Skills,
		LastContactEnd: domain.TimePoint(agent.LastContactEnd),
	}
}
