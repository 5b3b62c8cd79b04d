package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int           `toml:"version"`
	CapturedAt string        `toml:"captured_at"`
	Self       agentSchema   `toml:"self"`
	Cases      []caseSchema  `toml:"cases"`
	Peers      []agentSchema `toml:"peers"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported snapshot schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type agentSchema struct {
	Username       string   `toml:"username,omitempty"`
	State          string   `toml:"state,omitempty"`
	Skills         []string `toml:"skills,omitempty"`
	LastContactEnd string   `toml:"last_contact_end"`
}

type caseSchema struct {
	Subject   string `toml:"subject"`
	CreatedAt string `toml:"created_at"`
	Category  int    `toml:"category"`
	Origin    string `toml:"origin"`
	Language  string `toml:"language"`
}
