package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const emptyQueueMessage = "No Omni cases currently in queue"

type RenderOptions struct {
	// Username is shown in the header when set.
	Username string
	// Replayed marks a report computed from a saved snapshot.
	Replayed bool
}

// Render draws the report header followed by the projection table.
func Render(report domain.Report, opts RenderOptions) (string, error) {
	return renderView(report, opts, newStyles()), nil
}

func renderView(report domain.Report, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render(reportTitle(opts.Username))}
	if opts.Replayed {
		lines = append(lines, s.warning.Render("[snapshot replay]"))
	}
	lines = append(lines,
		s.header.Render("generated: "+formatGeneratedAt(report.GeneratedAt)),
		s.staleness.Render("Current Staleness: "+domain.FormatDuration(report.CurrentStaleness)),
		s.detail.Render(queueLine(report)),
	)

	if len(report.Rows) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render(emptyQueueMessage)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderTable(report, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func reportTitle(username string) string {
	if username == "" {
		return "Omni Staleness Projection"
	}

	return fmt.Sprintf("Omni Staleness Projection (%s)", username)
}

func formatGeneratedAt(at time.Time) string {
	if at.IsZero() {
		return "unknown"
	}

	return at.UTC().Format(time.RFC3339)
}

func queueLine(report domain.Report) string {
	switch report.RankStatus {
	case domain.RankProjected:
		return fmt.Sprintf("Queue Position: %s of %d eligible peers", rankLabel(report.CurrentRank), report.PeerCount)
	case domain.RankNoEligiblePeers:
		return "Queue Position: n/a (no eligible peers)"
	default:
		return "Queue Position: " + report.RankStatus.Label()
	}
}

func rankLabel(rank *int) string {
	if rank == nil {
		return "n/a"
	}

	return strconv.Itoa(*rank)
}

func renderTable(report domain.Report, s styles) string {
	withRank := report.RankStatus != domain.RankOmitted
	headers := []string{"Case", "New Staleness", "Reduction (%)"}
	if withRank {
		headers = append(headers, "New Position")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...)

	for _, row := range report.Rows {
		cells := []string{
			row.Subject,
			domain.FormatDuration(row.ProjectedStaleness),
			strconv.Itoa(row.ReductionPercent),
		}
		if withRank {
			cells = append(cells, rankLabel(row.QueueRank))
		}
		t.Row(cells...)
	}

	rows := report.Rows
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return s.tableHeader
		}
		if withRank && col == 3 && row >= 0 && row < len(rows) {
			if rank := rows[row].QueueRank; rank != nil && *rank == 1 {
				return s.topRank
			}
		}
		return s.cell
	})

	return t.Render()
}
