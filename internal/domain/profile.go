package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type ProfileID string

const DefaultProfileID ProfileID = "default"

// Profile is a saved connection to one Bonita engine.
type Profile struct {
	ID       ProfileID
	BaseURL  string
	Username string
	// SecretRef points to the password entry in the secret store.
	SecretRef         string
	RequiredProcesses []string
	UpdatedAt         time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.ContainsAny(string(p.ID), "/ \t") {
		return fmt.Errorf("id %q must not contain slashes or spaces", p.ID)
	}
	if strings.TrimSpace(p.BaseURL) == "" {
		return fmt.Errorf("base url is required")
	}
	parsed, err := url.Parse(p.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base url %q is not an absolute url", p.BaseURL)
	}
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("username is required")
	}

	return nil
}

func (p *Profile) NormalizeProcesses() {
	if p == nil {
		return
	}

	processes := make([]string, 0, len(p.RequiredProcesses))
	seen := make(map[string]struct{}, len(p.RequiredProcesses))
	for _, name := range p.RequiredProcesses {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		processes = append(processes, trimmed)
	}

	p.RequiredProcesses = processes
}

const secretRefScheme = "bonita://"

// PasswordSecretRef is the secret-store key holding a profile's password.
func PasswordSecretRef(id ProfileID) string {
	return fmt.Sprintf("%s%s/password", secretRefScheme, id)
}

// SecretRefPath strips the bonita:// scheme from a secret reference, leaving
// the slash separated entry path that backends store it under.
func SecretRefPath(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), secretRefScheme)
}
