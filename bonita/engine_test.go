package bonita

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testUser     = "walter.bates"
	testPassword = "bpm"
	registryID   = "9000"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Token  string
}

type registryKey struct {
	process string
	entity  string
}

// fakeEngine is an in-memory stand-in for the Bonita REST API.
type fakeEngine struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	logins     int
	seq        int
	validToken string
	rejectAll  bool
	omitCookie string
	loginCode  int

	processes    map[string]string
	tasks        map[string]map[string]string
	registry     map[registryKey]string
	registrySave []registerCaseInput
	nextCase     int
	caseResponse string
	emptyLists   map[string]int

	requests []recordedRequest
}

func newFakeEngine(t *testing.T) *fakeEngine {
	t.Helper()

	fe := &fakeEngine{
		t:          t,
		processes:  map[string]string{RegistryProcessName: registryID},
		tasks:      map[string]map[string]string{},
		registry:   map[registryKey]string{},
		nextCase:   1000,
		emptyLists: map[string]int{},
	}
	fe.server = httptest.NewServer(http.HandlerFunc(fe.serveHTTP))
	t.Cleanup(fe.server.Close)

	return fe
}

func (fe *fakeEngine) settings() Settings {
	return Settings{BaseURL: fe.server.URL, Username: testUser, Password: testPassword}
}

// client returns a connected client whose lookup waits are instant.
func (fe *fakeEngine) client(t *testing.T, required ...string) *Client {
	t.Helper()

	c := newTestClient(fe)
	require.NoError(t, c.Connect(context.Background(), fe.settings(), required...))
	fe.resetRequests()
	return c
}

func newTestClient(fe *fakeEngine, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(fe.server.Client())}, opts...)
	c := New(opts...)
	c.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return c
}

func (fe *fakeEngine) addProcess(name, id string) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.processes[name] = id
}

func (fe *fakeEngine) addTask(caseID, name, id string) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	if fe.tasks[caseID] == nil {
		fe.tasks[caseID] = map[string]string{}
	}
	fe.tasks[caseID][name] = id
}

func (fe *fakeEngine) bind(process, entity, caseID string) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.registry[registryKey{process: process, entity: entity}] = caseID
}

// emptyFor makes the next n list queries on path return an empty list.
func (fe *fakeEngine) emptyFor(path string, n int) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.emptyLists[path] = n
}

// expire makes the engine forget the current session.
func (fe *fakeEngine) expire() {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.validToken = ""
}

func (fe *fakeEngine) setRejectAll(reject bool) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.rejectAll = reject
}

func (fe *fakeEngine) loginCount() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.logins
}

func (fe *fakeEngine) resetRequests() {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.requests = nil
	fe.logins = 0
	fe.registrySave = nil
}

func (fe *fakeEngine) requestsTo(method, pathPrefix string) []recordedRequest {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	var matched []recordedRequest
	for _, r := range fe.requests {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			matched = append(matched, r)
		}
	}
	return matched
}

func (fe *fakeEngine) savedCases() []registerCaseInput {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return append([]registerCaseInput(nil), fe.registrySave...)
}

func (fe *fakeEngine) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	fe.mu.Lock()
	defer fe.mu.Unlock()

	if r.URL.Path == "/loginservice" {
		fe.handleLogin(w, r, body)
		return
	}

	fe.requests = append(fe.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
		Token:  r.Header.Get(apiTokenHeader),
	})

	if fe.rejectAll || !fe.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/API/bpm/process":
		fe.handleProcessList(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/API/bpm/task":
		fe.handleTaskList(w, r)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/API/bpm/process/") && strings.HasSuffix(r.URL.Path, "/instantiation"):
		fe.handleInstantiation(w, r, body)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/API/bpm/userTask/"):
		if r.URL.Query().Get("assign") != "true" {
			http.Error(w, "assign expected", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodGet && r.URL.Path == "/API/bdm/businessData/"+RegistryDataClass:
		fe.handleRegistryQuery(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (fe *fakeEngine) handleLogin(w http.ResponseWriter, r *http.Request, body []byte) {
	form, _ := url.ParseQuery(string(body))
	if fe.loginCode != 0 {
		w.WriteHeader(fe.loginCode)
		return
	}
	if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" ||
		form.Get("username") != testUser || form.Get("password") != testPassword {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	fe.logins++
	fe.seq++
	fe.validToken = fmt.Sprintf("token-%d", fe.seq)
	cookies := map[string]string{
		sessionCookie:  fmt.Sprintf("session-%d", fe.seq),
		apiTokenCookie: fe.validToken,
		localeCookie:   "en",
	}
	for name, value := range cookies {
		if name == fe.omitCookie {
			continue
		}
		http.SetCookie(w, &http.Cookie{Name: name, Value: value, Path: "/"})
	}
	w.WriteHeader(http.StatusNoContent)
}

func (fe *fakeEngine) authorized(r *http.Request) bool {
	if fe.validToken == "" || r.Header.Get(apiTokenHeader) != fe.validToken {
		return false
	}
	cookie, err := r.Cookie(apiTokenCookie)
	if err != nil || cookie.Value != fe.validToken {
		return false
	}
	_, err = r.Cookie(sessionCookie)
	return err == nil
}

func (fe *fakeEngine) consumeEmpty(path string) bool {
	if fe.emptyLists[path] > 0 {
		fe.emptyLists[path]--
		return true
	}
	return false
}

func filters(r *http.Request) map[string]string {
	result := map[string]string{}
	for _, f := range r.URL.Query()["f"] {
		key, value, _ := strings.Cut(f, "=")
		result[key] = value
	}
	return result
}

func (fe *fakeEngine) handleProcessList(w http.ResponseWriter, r *http.Request) {
	list := []map[string]any{}
	f := filters(r)
	if id, ok := fe.processes[f["name"]]; ok && !fe.consumeEmpty(r.URL.Path) {
		if version, constrained := f["version"]; !constrained || version == "1.0" {
			list = append(list, map[string]any{"id": id, "name": f["name"], "version": "1.0", "activationState": "ENABLED"})
		}
	}
	writeJSON(w, list)
}

func (fe *fakeEngine) handleTaskList(w http.ResponseWriter, r *http.Request) {
	list := []map[string]any{}
	f := filters(r)
	if id, ok := fe.tasks[f["caseId"]][f["name"]]; ok && !fe.consumeEmpty(r.URL.Path) {
		list = append(list, map[string]any{"id": id, "name": f["name"], "caseId": f["caseId"], "state": "ready"})
	}
	writeJSON(w, list)
}

func (fe *fakeEngine) handleInstantiation(w http.ResponseWriter, r *http.Request, body []byte) {
	processID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/API/bpm/process/"), "/instantiation")
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "json expected", http.StatusUnsupportedMediaType)
		return
	}

	if processID == registryID {
		var req struct {
			Input struct {
				ProcessName string          `json:"processName"`
				EntityID    string          `json:"entityId"`
				CaseID      json.RawMessage `json:"caseId"`
			} `json:"processRegisterInput"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		caseID := strings.Trim(string(req.Input.CaseID), `"`)
		fe.registrySave = append(fe.registrySave, registerCaseInput{ProcessName: req.Input.ProcessName, EntityID: req.Input.EntityID, CaseID: caseID})
		fe.registry[registryKey{process: req.Input.ProcessName, entity: req.Input.EntityID}] = caseID
		fe.nextCase++
		writeJSON(w, map[string]any{"caseId": fe.nextCase})
		return
	}

	if fe.caseResponse != "" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fe.caseResponse))
		return
	}
	fe.nextCase++
	writeJSON(w, map[string]any{"caseId": fe.nextCase})
}

func (fe *fakeEngine) handleRegistryQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("q") != registryQuery || q.Get("p") != "0" || q.Get("c") != "1" {
		http.Error(w, "unexpected registry query", http.StatusBadRequest)
		return
	}

	f := filters(r)
	list := []map[string]any{}
	if caseID, ok := fe.registry[registryKey{process: f["processName"], entity: f["entityId"]}]; ok {
		list = append(list, map[string]any{"processName": f["processName"], "entityId": f["entityId"], "caseId": json.Number(caseID)})
	}
	writeJSON(w, list)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
