package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/bonita-cli/bonita"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/bnema/bonita-cli/internal/ports"
	"github.com/google/uuid"
)

// WorkflowService runs engine operations for a stored profile and keeps the
// local launch journal.
type WorkflowService struct {
	engine   ports.Engine
	profiles *ProfileService
	journal  ports.LaunchJournal
	clock    ports.Clock
	newID    func() string
}

func NewWorkflowService(engine ports.Engine, profiles *ProfileService, journal ports.LaunchJournal, clock ports.Clock) *WorkflowService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WorkflowService{
		engine:   engine,
		profiles: profiles,
		journal:  journal,
		clock:    clock,
		newID:    uuid.NewString,
	}
}

// Connect logs in with the profile and reports the processes it verified.
func (s *WorkflowService) Connect(ctx context.Context, id domain.ProfileID, override SettingsOverride) (ConnectionReport, error) {
	settings, profile, err := s.connect(ctx, id, override)
	if err != nil {
		return ConnectionReport{}, err
	}

	report := ConnectionReport{
		Profile:  profile.ID,
		BaseURL:  settings.BaseURL,
		Username: settings.Username,
	}

	names := append([]string{bonita.RegistryProcessName}, profile.RequiredProcesses...)
	for _, name := range names {
		processID, _, err := s.engine.FindProcessID(ctx, name, "")
		if err != nil {
			return ConnectionReport{}, fmt.Errorf("describe process %s: %w", name, err)
		}
		report.Processes = append(report.Processes, ProcessCheck{
			Name:     name,
			ID:       processID,
			Registry: name == bonita.RegistryProcessName,
		})
	}

	return report, nil
}

func (s *WorkflowService) Launch(ctx context.Context, cmd LaunchCommand) (domain.LaunchRecord, error) {
	if _, _, err := s.connect(ctx, cmd.Profile, cmd.Override); err != nil {
		return domain.LaunchRecord{}, err
	}

	caseID, err := s.engine.LaunchProcess(ctx, cmd.ProcessName, cmd.EntityID, cmd.Params)
	if err != nil {
		return domain.LaunchRecord{}, err
	}

	record := domain.LaunchRecord{
		ID:          s.newID(),
		Kind:        domain.RecordKindLaunch,
		Profile:     cmd.Profile,
		ProcessName: cmd.ProcessName,
		EntityID:    cmd.EntityID,
		CaseID:      caseID,
		At:          s.clock.Now(),
	}
	if err := s.journal.Append(ctx, record); err != nil {
		return record, fmt.Errorf("case %s launched but not journaled: %w", caseID, err)
	}

	return record, nil
}

// Complete resolves the registered case once and executes the task in that
// same case, so the journaled case id is the one the task ran against.
func (s *WorkflowService) Complete(ctx context.Context, cmd CompleteCommand) (domain.LaunchRecord, error) {
	if err := bonita.ValidateProcessName(cmd.ProcessName); err != nil {
		return domain.LaunchRecord{}, err
	}
	if _, _, err := s.connect(ctx, cmd.Profile, cmd.Override); err != nil {
		return domain.LaunchRecord{}, err
	}

	caseID, err := s.engine.GetCase(ctx, cmd.ProcessName, cmd.EntityID)
	if err != nil {
		return domain.LaunchRecord{}, err
	}

	if err := s.engine.ExecuteTask(ctx, caseID, cmd.TaskName, cmd.Params); err != nil {
		return domain.LaunchRecord{}, err
	}

	record := domain.LaunchRecord{
		ID:          s.newID(),
		Kind:        domain.RecordKindComplete,
		Profile:     cmd.Profile,
		ProcessName: cmd.ProcessName,
		EntityID:    cmd.EntityID,
		CaseID:      caseID,
		TaskName:    cmd.TaskName,
		At:          s.clock.Now(),
	}
	if err := s.journal.Append(ctx, record); err != nil {
		return record, fmt.Errorf("task %s completed but not journaled: %w", cmd.TaskName, err)
	}

	return record, nil
}

func (s *WorkflowService) LookupCase(ctx context.Context, id domain.ProfileID, override SettingsOverride, processName, entityID string) (string, error) {
	if _, _, err := s.connect(ctx, id, override); err != nil {
		return "", err
	}

	return s.engine.GetCase(ctx, processName, entityID)
}

func (s *WorkflowService) FindProcess(ctx context.Context, id domain.ProfileID, override SettingsOverride, name, version string) (ProcessLookup, error) {
	if _, _, err := s.connect(ctx, id, override); err != nil {
		return ProcessLookup{}, err
	}

	processID, found, err := s.engine.FindProcessID(ctx, name, version)
	if err != nil {
		return ProcessLookup{}, err
	}

	return ProcessLookup{Name: name, Version: version, ID: processID, Found: found}, nil
}

// History returns journal records oldest first, optionally narrowed to one
// process.
func (s *WorkflowService) History(ctx context.Context, processName string) ([]domain.LaunchRecord, error) {
	records, err := s.journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	filtered := make([]domain.LaunchRecord, 0, len(records))
	for _, record := range records {
		if processName != "" && record.ProcessName != processName {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].At.Before(filtered[j].At)
	})

	return filtered, nil
}

func (s *WorkflowService) connect(ctx context.Context, id domain.ProfileID, override SettingsOverride) (bonita.Settings, domain.Profile, error) {
	settings, profile, err := s.profiles.ResolveSettings(ctx, id, override)
	if err != nil {
		return bonita.Settings{}, domain.Profile{}, err
	}

	if err := s.engine.Connect(ctx, settings, profile.RequiredProcesses...); err != nil {
		return bonita.Settings{}, domain.Profile{}, err
	}

	return settings, profile, nil
}
