package bonita

import (
	"context"
	"net/url"
)

type named interface {
	resourceName() string
	resourceID() string
}

func (p processResource) resourceName() string { return p.Name }
func (p processResource) resourceID() string   { return string(p.ID) }
func (t taskResource) resourceName() string    { return t.Name }
func (t taskResource) resourceID() string      { return string(t.ID) }

// findByName returns the id of the first item whose name equals name exactly.
func findByName[T named](items []T, name string) (string, bool) {
	for _, item := range items {
		if item.resourceName() == name {
			return item.resourceID(), true
		}
	}
	return "", false
}

// FindProcessID resolves a deployed process definition by name. An empty
// version leaves the version unconstrained.
func (c *Client) FindProcessID(ctx context.Context, name, version string) (string, bool, error) {
	query := url.Values{}
	query.Add("f", "name="+name)
	if version != "" {
		query.Add("f", "version="+version)
	}

	processes, err := listEventually[processResource](ctx, c, "find process "+name, getRequest("/API/bpm/process", query))
	if err != nil {
		return "", false, err
	}

	id, found := findByName(processes, name)
	return id, found, nil
}

// FindTaskID resolves a human task of a case by name. Tasks of a case that
// was just started may take a moment to appear.
func (c *Client) FindTaskID(ctx context.Context, name, caseID string) (string, bool, error) {
	query := url.Values{}
	query.Add("f", "caseId="+caseID)
	query.Add("f", "name="+name)

	tasks, err := listEventually[taskResource](ctx, c, "find task "+name, getRequest("/API/bpm/task", query))
	if err != nil {
		return "", false, err
	}

	id, found := findByName(tasks, name)
	return id, found, nil
}

// listEventually repeats a list query while it comes back empty, up to the
// configured number of attempts with a fixed delay in between.
func listEventually[T any](ctx context.Context, c *Client, op string, build requestBuilder) ([]T, error) {
	for attempt := 1; ; attempt++ {
		resp, err := c.do(ctx, build)
		if err != nil {
			return nil, err
		}

		var items []T
		if err := decodeBody(resp, op, &items); err != nil {
			return nil, err
		}
		if len(items) > 0 || attempt >= c.lookupAttempts {
			return items, nil
		}

		c.logger.Debug("bonita lookup returned no results, waiting", "op", op, "attempt", attempt, "delay", c.lookupDelay)
		if err := c.sleep(ctx, c.lookupDelay); err != nil {
			return nil, err
		}
	}
}
