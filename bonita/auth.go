package bonita

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Login performs the login handshake and returns a new session. Empty
// credentials default to the connection settings. Login does not touch the
// session cache; use RefreshSession for that.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	settings, err := c.connected()
	if err != nil {
		return Session{}, err
	}
	if username == "" {
		username = settings.Username
	}
	if password == "" {
		password = settings.Password
	}

	values := url.Values{}
	values.Set("username", username)
	values.Set("password", password)
	values.Set("redirect", "false")

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	if err := c.throttle(requestCtx); err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, settings.BaseURL+"/loginservice", strings.NewReader(values.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Session{}, &AuthenticationError{Username: username, StatusCode: resp.StatusCode}
	}

	session, err := sessionFromCookies(resp.Cookies())
	if err != nil {
		return Session{}, err
	}

	c.logger.Debug("bonita login succeeded", "username", username)
	return session, nil
}

func sessionFromCookies(cookies []*http.Cookie) (Session, error) {
	values := make(map[string]string, len(cookies))
	for _, cookie := range cookies {
		values[cookie.Name] = cookie.Value
	}

	var session Session
	for _, field := range []struct {
		name string
		dst  *string
	}{
		{name: sessionCookie, dst: &session.ID},
		{name: apiTokenCookie, dst: &session.APIToken},
		{name: localeCookie, dst: &session.Locale},
	} {
		value, ok := values[field.name]
		if !ok || value == "" {
			return Session{}, &ProtocolError{Op: "login", Reason: fmt.Sprintf("response missing %s cookie", field.name)}
		}
		*field.dst = value
	}

	return session, nil
}
