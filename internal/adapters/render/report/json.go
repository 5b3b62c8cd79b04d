package report

import (
	"encoding/json"
	"time"

	"github.com/bnema/gimme-omni/internal/domain"
)

type jsonReport struct {
	GeneratedAt       string    `json:"generated_at"`
	CurrentStaleness  string    `json:"current_staleness"`
	CurrentSeconds    int64     `json:"current_staleness_seconds"`
	CurrentRank       *int      `json:"current_rank,omitempty"`
	RankStatus        string    `json:"rank_status"`
	EligiblePeerCount int       `json:"eligible_peer_count"`
	Cases             []jsonRow `json:"cases"`
}

type jsonRow struct {
	Subject            string `json:"subject"`
	ReductionPercent   int    `json:"reduction_percent"`
	ProjectedStaleness string `json:"projected_staleness"`
	ProjectedSeconds   int64  `json:"projected_staleness_seconds"`
	QueueRank          *int   `json:"queue_rank,omitempty"`
}

// RenderJSON encodes the report for scripts. Durations are given both as
// D.HH:MM:SS and as whole seconds.
func RenderJSON(report domain.Report) (string, error) {
	out := jsonReport{
		GeneratedAt:       report.GeneratedAt.UTC().Format(time.RFC3339),
		CurrentStaleness:  domain.FormatDuration(report.CurrentStaleness),
		CurrentSeconds:    int64(report.CurrentStaleness / time.Second),
		CurrentRank:       report.CurrentRank,
		RankStatus:        string(report.RankStatus),
		EligiblePeerCount: report.PeerCount,
		Cases:             make([]jsonRow, 0, len(report.Rows)),
	}

	for _, row := range report.Rows {
		out.Cases = append(out.Cases, jsonRow{
			Subject:            row.Subject,
			ReductionPercent:   row.ReductionPercent,
			ProjectedStaleness: domain.FormatDuration(row.ProjectedStaleness),
			ProjectedSeconds:   int64(row.ProjectedStaleness / time.Second),
			QueueRank:          row.QueueRank,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data) + "\n", nil
}
