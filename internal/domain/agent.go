package domain

import "slices"

type AgentState string

const (
	AgentStateAvailable AgentState = "Available"

	// SkillEnglishInbound marks agents taking front-line English cases.
	SkillEnglishInbound = "fl_english_ib"
)

type Agent struct {
	Username       string
	State          AgentState
	Skills         []string
	LastContactEnd TimePoint
}

func (a Agent) HasSkill(skill string) bool {
	return slices.Contains(a.Skills, skill)
}

// InDispatchQueue reports whether the agent competes for the next
// English omni-channel case.
func (a Agent) InDispatchQueue() bool {
	return a.State == AgentStateAvailable && a.HasSkill(SkillEnglishInbound)
}
