package bonita

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration  = errors.New("bonita configuration error")
	ErrAuthentication = errors.New("bonita authentication failed")
	ErrProtocol       = errors.New("unexpected bonita response")
	ErrDeployment     = errors.New("bonita process not deployed")
	ErrHTTP           = errors.New("bonita request failed")
	ErrRegistryLookup = errors.New("bonita case registry lookup failed")
	ErrTaskNotFound   = errors.New("bonita task not found")

	ErrNotConnected = &ConfigurationError{Field: "connection", Reason: "client is not connected"}
)

// ConfigurationError reports input the caller must fix before retrying.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

type AuthenticationError struct {
	Username   string
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login as %q rejected with status %d", e.Username, e.StatusCode)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// ProtocolError means the engine answered with a shape this client does not
// understand, usually a server version mismatch.
type ProtocolError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

type DeploymentError struct {
	Process string
	Version string
}

func (e *DeploymentError) Error() string {
	name := e.Process
	if e.Version != "" {
		name += " (version " + e.Version + ")"
	}
	return fmt.Sprintf("missing mandatory process %s: please deploy it before continuing", name)
}

func (e *DeploymentError) Is(target error) bool {
	return target == ErrDeployment
}

// HTTPError carries the status of a request that still failed after the
// session refresh retry.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTP
}

// RegistryLookupError cannot tell a missing binding apart from a missing
// registry data class, so its message names both possibilities.
type RegistryLookupError struct {
	ProcessName string
	EntityID    string
	Err         error
}

func (e *RegistryLookupError) Error() string {
	msg := fmt.Sprintf("failed to get case for processName %q entityId %q", e.ProcessName, e.EntityID)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + "; possible cause: missing mandatory BDM class in Bonita setup: " + RegistryDataClass
}

func (e *RegistryLookupError) Is(target error) bool {
	return target == ErrRegistryLookup
}

func (e *RegistryLookupError) Unwrap() error {
	return e.Err
}

type TaskNotFoundError struct {
	Task   string
	CaseID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %q not found in case %s", e.Task, e.CaseID)
}

func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}
