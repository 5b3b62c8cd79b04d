package domain

import (
	"fmt"
	"time"
)

type RankStatus string

const (
	RankOmitted         RankStatus = "omitted"
	RankNoEligiblePeers RankStatus = "no_eligible_peers"
	RankProjected       RankStatus = "projected"
)

func (s RankStatus) Label() string {
	switch s {
	case RankOmitted:
		return "not tracked"
	case RankNoEligiblePeers:
		return "no eligible peers"
	case RankProjected:
		return "projected"
	default:
		return string(s)
	}
}

type ProjectedCase struct {
	Subject            string
	ReductionPercent   int
	ProjectedStaleness time.Duration
	QueueRank          *int
}

type Report struct {
	GeneratedAt      time.Time
	CurrentStaleness time.Duration
	CurrentRank      *int
	RankStatus       RankStatus
	PeerCount        int
	Rows             []ProjectedCase
}

type ReportOptions struct {
	Now         time.Time
	ProjectRank bool
	ExcludeSelf bool
}

// BuildReport projects, for every eligible case in input order, the
// staleness the agent would be left with after accepting it.
func BuildReport(snapshot Snapshot, opts ReportOptions) (Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	staleness, err := ComputeStaleness(snapshot.Self.LastContactEnd, now)
	if err != nil {
		return Report{}, fmt.Errorf("current staleness: %w", err)
	}

	report := Report{
		GeneratedAt:      now,
		CurrentStaleness: staleness,
		RankStatus:       RankOmitted,
	}

	var queue PeerQueue
	if opts.ProjectRank {
		var filters []PeerFilter
		if opts.ExcludeSelf {
			filters = append(filters, ExcludeUsername(snapshot.Self.Username))
		}

		queue, err = BuildPeerQueue(snapshot.Peers, now, filters...)
		if err != nil {
			return Report{}, fmt.Errorf("build peer queue: %w", err)
		}

		report.PeerCount = len(queue)
		report.RankStatus = RankNoEligiblePeers
		if rank, ok := queue.Rank(staleness); ok {
			report.RankStatus = RankProjected
			report.CurrentRank = &rank
		}
	}

	eligible := FilterEligibleCases(snapshot.Cases)
	report.Rows = make([]ProjectedCase, 0, len(eligible))
	for _, c := range eligible {
		age, err := ComputeStaleness(c.CreatedAt, now)
		if err != nil {
			return Report{}, fmt.Errorf("case %q age: %w", c.Subject, err)
		}

		reduction := ReductionPercent(age)
		row := ProjectedCase{
			Subject:            c.Subject,
			ReductionPercent:   reduction,
			ProjectedStaleness: ProjectNewStaleness(staleness, reduction),
		}
		if report.RankStatus == RankProjected {
			if rank, ok := queue.Rank(row.ProjectedStaleness); ok {
				row.QueueRank = &rank
			}
		}

		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
