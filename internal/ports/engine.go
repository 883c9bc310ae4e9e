package ports

import (
	"context"

	"github.com/bnema/bonita-cli/bonita"
)

// Engine is the workflow surface of a Bonita client. *bonita.Client
// satisfies it.
type Engine interface {
	Connect(ctx context.Context, settings bonita.Settings, requiredProcesses ...string) error
	LaunchProcess(ctx context.Context, processName, entityID string, params bonita.Params) (string, error)
	ExecuteTask(ctx context.Context, caseID, taskName string, params bonita.Params) error
	GetCase(ctx context.Context, processName, entityID string) (string, error)
	FindProcessID(ctx context.Context, name, version string) (string, bool, error)
}

var _ Engine = (*bonita.Client)(nil)
