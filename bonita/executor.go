package bonita

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// requestBuilder must be safe to call twice. The executor applies the cached
// session to the first request and a refreshed one to the replay.
type requestBuilder func(ctx context.Context, settings Settings) (*http.Request, error)

type apiResponse struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (r *apiResponse) ok() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// do sends the request with the cached session. A 401 refreshes the session
// and replays the request exactly once; any failure status after that is an
// *HTTPError.
func (c *Client) do(ctx context.Context, build requestBuilder) (*apiResponse, error) {
	settings, err := c.connected()
	if err != nil {
		return nil, err
	}

	session, err := c.sessions.get(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, settings, session, build)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("bonita session rejected, logging in again", "method", resp.Method, "url", resp.URL)

		session, err = c.sessions.refreshStale(ctx, session)
		if err != nil {
			return nil, fmt.Errorf("refresh session: %w", err)
		}

		resp, err = c.send(ctx, settings, session, build)
		if err != nil {
			return nil, err
		}
	}

	if !resp.ok() {
		return nil, &HTTPError{
			Method:     resp.Method,
			URL:        resp.URL,
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, settings Settings, session Session, build requestBuilder) (*apiResponse, error) {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	if err := c.throttle(requestCtx); err != nil {
		return nil, err
	}

	req, err := build(requestCtx, settings)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	authorize(req, session)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}

	return &apiResponse{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *Client) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func authorize(req *http.Request, session Session) {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session.ID})
	req.AddCookie(&http.Cookie{Name: apiTokenCookie, Value: session.APIToken})
	req.AddCookie(&http.Cookie{Name: localeCookie, Value: session.Locale})
	req.Header.Set(apiTokenHeader, session.APIToken)
}

func getRequest(path string, query url.Values) requestBuilder {
	return func(ctx context.Context, settings Settings) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint(settings, path, query), nil)
	}
}

// postRequest sends body as JSON. A nil body sends no payload but keeps the
// JSON content type, as the engine expects on these endpoints.
func postRequest(path string, query url.Values, body []byte) requestBuilder {
	return func(ctx context.Context, settings Settings) (*http.Request, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(settings, path, query), reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
}

func endpoint(settings Settings, path string, query url.Values) string {
	u := settings.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func encodeParams(params Params) ([]byte, error) {
	if len(params) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, &ConfigurationError{Field: "params", Reason: fmt.Sprintf("encode as json: %v", err)}
	}
	return body, nil
}

func decodeBody(resp *apiResponse, op string, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &ProtocolError{Op: op, Reason: "decode response body", Err: err}
	}
	return nil
}
