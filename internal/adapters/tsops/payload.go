package tsops

import "github.com/bnema/gimme-omni/internal/domain"

type agentPayload struct {
	Username                   string   `json:"username"`
	State                      string   `json:"state"`
	Skills                     []string `json:"skills"`
	AdjustedLastContactEndTime string   `json:"adjustedLastContactEndTime"`
}

type casePayload struct {
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
	Category  int    `json:"category"`
	Origin    string `json:"origin"`
	Language  string `json:"language"`
}

func (p agentPayload) toDomain() domain.Agent {
	return domain.Agent{
		Username:       p.Username,
		State:          domain.AgentState(p.State),
		Skills:         p.Skills,
		LastContactEnd: domain.TimePoint(p.AdjustedLastContactEndTime),
	}
}

func (p casePayload) toDomain() domain.Case {
	return domain.Case{
		Subject:   p.Subject,
		CreatedAt: domain.TimePoint(p.Timestamp),
		Category:  p.Category,
		Origin:    p.Origin,
		Language:  p.Language,
	}
}
