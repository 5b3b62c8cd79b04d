package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/ports"
	"github.com/rs/zerolog"
)

var ErrUsernameRequired = errors.New("agent username is required")

type ReportService struct {
	source ports.SnapshotSource
	clock  ports.Clock
	log    zerolog.Logger
}

func NewReportService(source ports.SnapshotSource, clock ports.Clock, log zerolog.Logger) *ReportService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ReportService{
		source: source,
		clock:  clock,
		log:    log.With().Str("component", "report").Logger(),
	}
}

// Capture fetches the self record, the open cases and the peer list.
// Fetches run one after another; the first failure aborts the capture.
func (s *ReportService) Capture(ctx context.Context, username string) (domain.Snapshot, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Snapshot{}, ErrUsernameRequired
	}

	self, err := s.source.FetchAgent(ctx, username)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch agent %s: %w", username, err)
	}
	if self.Username == "" {
		self.Username = username
	}

	cases, err := s.source.FetchCurrentCases(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch current cases: %w", err)
	}

	peers, err := s.source.FetchAgents(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch agents: %w", err)
	}

	snapshot := domain.Snapshot{
		Self:       self,
		Cases:      cases,
		Peers:      peers,
		CapturedAt: s.clock.Now(),
	}

	s.log.Debug().
		Str("username", username).
		Int("cases", len(cases)).
		Int("peers", len(peers)).
		Msg("captured snapshot")

	return snapshot, nil
}

func (s *ReportService) Generate(ctx context.Context, query GenerateReportQuery) (domain.Report, error) {
	snapshot, err := s.Capture(ctx, query.Username)
	if err != nil {
		return domain.Report{}, err
	}

	return s.FromSnapshot(snapshot, query.Options)
}

// FromSnapshot computes a report for an already captured snapshot, evaluated
// at the service clock unless opts.AtCapture is set.
func (s *ReportService) FromSnapshot(snapshot domain.Snapshot, opts ReportOptions) (domain.Report, error) {
	now := s.clock.Now()
	if opts.AtCapture && !snapshot.CapturedAt.IsZero() {
		now = snapshot.CapturedAt
	}

	report, err := domain.BuildReport(snapshot, domain.ReportOptions{
		Now:         now,
		ProjectRank: opts.ProjectRank,
		ExcludeSelf: opts.ExcludeSelf,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("build report: %w", err)
	}

	s.log.Debug().
		Int("eligible_cases", len(report.Rows)).
		Str("rank_status", string(report.RankStatus)).
		Msg("built report")

	return report, nil
}
