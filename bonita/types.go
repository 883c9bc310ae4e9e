package bonita

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Reserved infrastructure identifiers. Caller process names must not use them.
const (
	RegistryProcessName = "SYSTEM_RegisterProcess"
	RegistryDataClass   = "io.codecontract.core.ProcessRegistry"
)

const (
	registryQuery = "findByProcessNameAndEntityId"

	apiTokenHeader = "X-Bonita-API-Token"
	sessionCookie  = "JSESSIONID"
	apiTokenCookie = "X-Bonita-API-Token"
	localeCookie   = "BOS_Locale"
)

// Settings are the connection settings handed to Connect.
type Settings struct {
	BaseURL  string
	Username string
	Password string
}

func (s Settings) validate() error {
	switch {
	case strings.TrimSpace(s.BaseURL) == "":
		return &ConfigurationError{Field: "base url", Reason: "missing BPM base url"}
	case s.Username == "":
		return &ConfigurationError{Field: "username", Reason: "missing BPM user"}
	case s.Password == "":
		return &ConfigurationError{Field: "password", Reason: "missing BPM password"}
	}
	return nil
}

// Session is the credential bundle returned by the login service.
type Session struct {
	ID       string
	APIToken string
	Locale   string
}

func (s Session) IsZero() bool {
	return s == Session{}
}

// Params is an optional JSON object sent as a contract input. A nil or empty
// Params sends no request body.
type Params map[string]any

// engineID decodes identifiers the engine emits either as JSON strings or as
// bare numbers.
type engineID string

func (id *engineID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = engineID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode engine id %s: %w", data, err)
	}
	*id = engineID(n.String())
	return nil
}

type processResource struct {
	ID              engineID `json:"id"`
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	DisplayName     string   `json:"displayName"`
	ActivationState string   `json:"activationState"`
}

type taskResource struct {
	ID     engineID `json:"id"`
	Name   string   `json:"name"`
	CaseID engineID `json:"caseId"`
	State  string   `json:"state"`
}

type instantiationResponse struct {
	CaseID engineID `json:"caseId"`
}

type registryEntry struct {
	ProcessName string   `json:"processName"`
	EntityID    engineID `json:"entityId"`
	CaseID      engineID `json:"caseId"`
}

type registerCaseRequest struct {
	Input registerCaseInput `json:"processRegisterInput"`
}

type registerCaseInput struct {
	ProcessName string `json:"processName"`
	EntityID    string `json:"entityId"`
	CaseID      any    `json:"caseId"`
}

// caseIDValue keeps numeric case ids numeric on the wire, matching what the
// instantiation endpoint returned. Ids with a leading zero stay strings since
// they are not valid JSON numbers.
func caseIDValue(caseID string) any {
	if caseID == "" || (caseID[0] == '0' && caseID != "0") {
		return caseID
	}
	for _, r := range caseID {
		if r < '0' || r > '9' {
			return caseID
		}
	}
	return json.Number(caseID)
}
