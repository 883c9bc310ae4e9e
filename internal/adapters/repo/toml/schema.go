package toml

import "fmt"

const (
	currentProfilesSchemaVersion = 1
	currentJournalSchemaVersion  = 1
)

type profilesFileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *profilesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentProfilesSchemaVersion
	}
}

func (s profilesFileSchema) validateVersion() error {
	if s.Version > currentProfilesSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentProfilesSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	ID                string   `toml:"id"`
	BaseURL           string   `toml:"base_url"`
	Username          string   `toml:"username"`
	SecretRef         string   `toml:"secret_ref"`
	RequiredProcesses []string `toml:"required_processes"`
	UpdatedAt         string   `toml:"updated_at"`
}

type journalFileSchema struct {
	Version int            `toml:"version"`
	Records []recordSchema `toml:"records"`
}

func (s *journalFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentJournalSchemaVersion
	}
}

func (s journalFileSchema) validateVersion() error {
	if s.Version > currentJournalSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentJournalSchemaVersion)
	}

	return nil
}

type recordSchema struct {
	ID          string `toml:"id"`
	Kind        string `toml:"kind"`
	Profile     string `toml:"profile"`
	ProcessName string `toml:"process_name"`
	EntityID    string `toml:"entity_id"`
	CaseID      string `toml:"case_id"`
	TaskName    string `toml:"task_name,omitempty"`
	At          string `toml:"at"`
}
