package bonita

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// SaveCase records which case was started for an entity by launching the
// registry process with the binding as its contract input.
func (c *Client) SaveCase(ctx context.Context, processName, entityID, caseID string) error {
	registryID, found, err := c.FindProcessID(ctx, RegistryProcessName, "")
	if err != nil {
		return fmt.Errorf("resolve registry process: %w", err)
	}
	if !found {
		return &DeploymentError{Process: RegistryProcessName}
	}

	body, err := json.Marshal(registerCaseRequest{Input: registerCaseInput{
		ProcessName: processName,
		EntityID:    entityID,
		CaseID:      caseIDValue(caseID),
	}})
	if err != nil {
		return fmt.Errorf("encode registry entry: %w", err)
	}

	if _, err := c.do(ctx, postRequest(instantiationPath(registryID), nil, body)); err != nil {
		return fmt.Errorf("save case %s for %s/%s: %w", caseID, processName, entityID, err)
	}

	c.logger.Debug("bonita case registered", "process", processName, "entity_id", entityID, "case_id", caseID)
	return nil
}

// GetCase returns the case registered for processName and entityID.
func (c *Client) GetCase(ctx context.Context, processName, entityID string) (string, error) {
	query := url.Values{}
	query.Set("q", registryQuery)
	query.Set("p", "0")
	query.Set("c", "1")
	query.Add("f", "processName="+processName)
	query.Add("f", "entityId="+entityID)

	resp, err := c.do(ctx, getRequest("/API/bdm/businessData/"+RegistryDataClass, query))
	if err != nil {
		return "", err
	}

	var entries []registryEntry
	if err := json.Unmarshal(resp.Body, &entries); err != nil {
		return "", &RegistryLookupError{ProcessName: processName, EntityID: entityID, Err: err}
	}
	if len(entries) == 0 {
		return "", &RegistryLookupError{ProcessName: processName, EntityID: entityID, Err: errors.New("no registry entry")}
	}
	if entries[0].CaseID == "" {
		return "", &RegistryLookupError{ProcessName: processName, EntityID: entityID, Err: errors.New("registry entry has no caseId")}
	}

	return string(entries[0].CaseID), nil
}

func instantiationPath(processID string) string {
	return "/API/bpm/process/" + url.PathEscape(processID) + "/instantiation"
}
