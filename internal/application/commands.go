package application

import (
	"github.com/bnema/bonita-cli/bonita"
	"github.com/bnema/bonita-cli/internal/domain"
)

type SetProfileCommand struct {
	ID                domain.ProfileID
	BaseURL           string
	Username          string
	Password          string
	RequiredProcesses []string
}

// SettingsOverride carries connection values from the environment. Non-empty
// fields win over the stored profile.
type SettingsOverride struct {
	BaseURL  string
	Username string
	Password string
}

func (o SettingsOverride) complete() bool {
	return o.BaseURL != "" && o.Username != "" && o.Password != ""
}

type LaunchCommand struct {
	Profile     domain.ProfileID
	Override    SettingsOverride
	ProcessName string
	EntityID    string
	Params      bonita.Params
}

type CompleteCommand struct {
	Profile     domain.ProfileID
	Override    SettingsOverride
	ProcessName string
	EntityID    string
	TaskName    string
	Params      bonita.Params
}
