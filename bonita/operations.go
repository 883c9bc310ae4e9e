package bonita

import (
	"context"
	"fmt"
	"net/url"
)

// Connect validates and stores the connection settings, logs in, and checks
// that the registry process and every required process are deployed. It
// stops at the first missing process. On failure the client keeps the
// settings it had before the call, with no cached session.
func (c *Client) Connect(ctx context.Context, settings Settings, requiredProcesses ...string) error {
	if err := settings.validate(); err != nil {
		return err
	}

	previous := c.swapSettings(&settings)
	if err := c.connect(ctx, requiredProcesses); err != nil {
		c.swapSettings(previous)
		c.sessions.invalidate()
		return err
	}

	return nil
}

func (c *Client) connect(ctx context.Context, requiredProcesses []string) error {
	if _, err := c.sessions.refresh(ctx); err != nil {
		return err
	}

	for _, name := range requiredWithRegistry(requiredProcesses) {
		_, found, err := c.FindProcessID(ctx, name, "")
		if err != nil {
			return fmt.Errorf("check process %s: %w", name, err)
		}
		if !found {
			return &DeploymentError{Process: name}
		}
	}

	return nil
}

func requiredWithRegistry(names []string) []string {
	required := make([]string, 0, len(names)+1)
	required = append(required, RegistryProcessName)
	for _, name := range names {
		if name == RegistryProcessName {
			continue
		}
		required = append(required, name)
	}
	return required
}

// LaunchProcess starts a case of processName for entityID, registers the
// binding and returns the new case id.
func (c *Client) LaunchProcess(ctx context.Context, processName, entityID string, params Params) (string, error) {
	if err := ValidateProcessName(processName); err != nil {
		return "", err
	}

	processID, found, err := c.FindProcessID(ctx, processName, "")
	if err != nil {
		return "", fmt.Errorf("resolve process %s: %w", processName, err)
	}
	if !found {
		return "", &DeploymentError{Process: processName}
	}

	body, err := encodeParams(params)
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, postRequest(instantiationPath(processID), nil, body))
	if err != nil {
		return "", fmt.Errorf("instantiate process %s: %w", processName, err)
	}

	var created instantiationResponse
	if err := decodeBody(resp, "instantiate process "+processName, &created); err != nil {
		return "", err
	}
	if created.CaseID == "" {
		return "", &ProtocolError{Op: "instantiate process " + processName, Reason: "response missing caseId"}
	}
	caseID := string(created.CaseID)

	if err := c.SaveCase(ctx, processName, entityID, caseID); err != nil {
		return "", err
	}

	return caseID, nil
}

// CompleteTask executes taskName in the case registered for processName and
// entityID, assigning it to the connected user.
func (c *Client) CompleteTask(ctx context.Context, processName, entityID, taskName string, params Params) error {
	if err := ValidateProcessName(processName); err != nil {
		return err
	}

	caseID, err := c.GetCase(ctx, processName, entityID)
	if err != nil {
		return err
	}

	return c.ExecuteTask(ctx, caseID, taskName, params)
}

// ExecuteTask executes taskName in an already resolved case, assigning it to
// the connected user.
func (c *Client) ExecuteTask(ctx context.Context, caseID, taskName string, params Params) error {
	taskID, found, err := c.FindTaskID(ctx, taskName, caseID)
	if err != nil {
		return fmt.Errorf("resolve task %s: %w", taskName, err)
	}
	if !found {
		return &TaskNotFoundError{Task: taskName, CaseID: caseID}
	}

	body, err := encodeParams(params)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("assign", "true")
	path := "/API/bpm/userTask/" + url.PathEscape(taskID) + "/execution"
	if _, err := c.do(ctx, postRequest(path, query, body)); err != nil {
		return fmt.Errorf("execute task %s: %w", taskName, err)
	}

	return nil
}

// ValidateProcessName rejects empty names and the reserved registry process.
func ValidateProcessName(name string) error {
	if name == "" {
		return &ConfigurationError{Field: "process name", Reason: "is required"}
	}
	if name == RegistryProcessName {
		return &ConfigurationError{Field: "process name", Reason: fmt.Sprintf("%q is reserved", name)}
	}
	return nil
}
