package domain

import "time"

type RecordKind string

const (
	RecordKindLaunch   RecordKind = "launch"
	RecordKindComplete RecordKind = "complete"
)

// LaunchRecord is one journal entry for a case started or a task completed
// from this machine.
type LaunchRecord struct {
	ID          string
	Kind        RecordKind
	Profile     ProfileID
	ProcessName string
	EntityID    string
	CaseID      string
	TaskName    string
	At          time.Time
}

func (r LaunchRecord) Summary() string {
	switch r.Kind {
	case RecordKindComplete:
		return "completed " + r.TaskName + " in case " + r.CaseID
	case RecordKindLaunch:
		return "launched case " + r.CaseID
	default:
		return string(r.Kind)
	}
}
