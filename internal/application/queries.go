package application

import (
	"github.com/bnema/bonita-cli/internal/domain"
)

type ProcessCheck struct {
	Name     string
	ID       string
	Registry bool
}

// ConnectionReport describes a successful connect: who logged in where, and
// the deployed processes that were checked.
type ConnectionReport struct {
	Profile   domain.ProfileID
	BaseURL   string
	Username  string
	Processes []ProcessCheck
}

type ProcessLookup struct {
	Name    string
	Version string
	ID      string
	Found   bool
}
