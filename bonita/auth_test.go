package bonita

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsSessionFromCookies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bonita/loginservice", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "walter.bates", r.Form.Get("username"))
		assert.Equal(t, "bpm", r.Form.Get("password"))
		assert.Equal(t, "false", r.Form.Get("redirect"))

		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "A1B2"})
		http.SetCookie(w, &http.Cookie{Name: "X-Bonita-API-Token", Value: "tok"})
		http.SetCookie(w, &http.Cookie{Name: "BOS_Locale", Value: "fr"})
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c := New(WithHTTPClient(server.Client()))
	c.setSettings(Settings{BaseURL: server.URL + "/bonita/", Username: "walter.bates", Password: "bpm"})

	session, err := c.Login(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, Session{ID: "A1B2", APIToken: "tok", Locale: "fr"}, session)
}

func TestLoginExplicitCredentialsOverrideSettings(t *testing.T) {
	t.Parallel()

	fe := newFakeEngine(t)
	c := newTestClient(fe)
	c.setSettings(Settings{BaseURL: fe.server.URL, Username: "someone", Password: "else"})

	_, err := c.Login(context.Background(), testUser, testPassword)
	require.NoError(t, err)
	assert.Equal(t, 1, fe.loginCount())
}

func TestLoginRejectedCredentialsReturnAuthenticationError(t *testing.T) {
	t.Parallel()

	fe := newFakeEngine(t)
	c := newTestClient(fe)
	c.setSettings(Settings{BaseURL: fe.server.URL, Username: testUser, Password: "wrong"})

	_, err := c.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)

	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, testUser, authErr.Username)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestLoginMissingCookieReturnsProtocolError(t *testing.T) {
	t.Parallel()

	for _, cookie := range []string{sessionCookie, apiTokenCookie, localeCookie} {
		cookie := cookie
		t.Run(cookie, func(t *testing.T) {
			t.Parallel()

			fe := newFakeEngine(t)
			fe.omitCookie = cookie
			c := newTestClient(fe)
			c.setSettings(fe.settings())

			_, err := c.Login(context.Background(), "", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProtocol)
			assert.Contains(t, err.Error(), cookie)
		})
	}
}

func TestLoginRequiresConnectedClient(t *testing.T) {
	t.Parallel()

	_, err := New().Login(context.Background(), "u", "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Same(t, ErrNotConnected, err)
}

func TestLoginTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c := New(WithHTTPClient(server.Client()), WithRequestTimeout(20*time.Millisecond))
	c.setSettings(Settings{BaseURL: server.URL, Username: "u", Password: "p"})

	_, err := c.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestSessionIsCachedUntilRefreshed(t *testing.T) {
	t.Parallel()

	fe := newFakeEngine(t)
	c := newTestClient(fe)
	c.setSettings(fe.settings())
	ctx := context.Background()

	first, err := c.Session(ctx)
	require.NoError(t, err)
	again, err := c.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, fe.loginCount())

	refreshed, err := c.RefreshSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, refreshed)
	assert.Equal(t, 2, fe.loginCount())

	current, err := c.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, refreshed, current)
}

func TestInvalidateSessionLogsInLazily(t *testing.T) {
	t.Parallel()

	fe := newFakeEngine(t)
	c := newTestClient(fe)
	c.setSettings(fe.settings())
	ctx := context.Background()

	_, err := c.Session(ctx)
	require.NoError(t, err)

	c.InvalidateSession()
	assert.Equal(t, 1, fe.loginCount())

	_, err = c.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fe.loginCount())
}

func TestRefreshStaleLogsInOnceForConcurrentCallers(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	logins := 0
	store := newSessionStore(func(ctx context.Context, _, _ string) (Session, error) {
		mu.Lock()
		defer mu.Unlock()
		logins++
		return Session{ID: "s", APIToken: string(rune('a' + logins)), Locale: "en"}, nil
	})

	stale, err := store.get(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Session, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = store.refreshStale(context.Background(), stale)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, logins)
	for _, session := range results {
		assert.Equal(t, results[0], session)
		assert.NotEqual(t, stale, session)
	}
}

func TestFailedRefreshLeavesNoCachedSession(t *testing.T) {
	t.Parallel()

	loginErr := errors.New("engine down")
	calls := 0
	store := newSessionStore(func(ctx context.Context, _, _ string) (Session, error) {
		calls++
		if calls > 1 {
			return Session{}, loginErr
		}
		return Session{ID: "s", APIToken: "t", Locale: "en"}, nil
	})

	stale, err := store.get(context.Background())
	require.NoError(t, err)

	_, err = store.refreshStale(context.Background(), stale)
	require.ErrorIs(t, err, loginErr)

	_, err = store.get(context.Background())
	require.ErrorIs(t, err, loginErr)
	assert.Equal(t, 3, calls)
}
