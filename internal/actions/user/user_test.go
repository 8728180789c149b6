package user

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
	"github.com/raven-themes/raven/internal/remote"
	"github.com/raven-themes/raven/internal/store"
	"github.com/raven-themes/raven/internal/testutil"
	"github.com/raven-themes/raven/internal/ui/style"
	"github.com/raven-themes/raven/internal/usage"
)

type fixture struct {
	server *testutil.ThemeServer
	store  *store.Store
	out    *testutil.Output
	deps   Deps
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	f := &fixture{
		server: testutil.NewThemeServer(t, handler),
		store:  testutil.NewTestStore(t),
		out:    &testutil.Output{},
	}
	f.deps = Deps{
		Remote:  f.server.Client(t),
		Session: f.store,
		Logger:  log.NopLogger{},
		Styler:  style.NopStyler{},
		Context: context.Background,
		Printf:  f.out.Printf,
		Println: f.out.Println,
	}
	return f
}

func (f *fixture) login(t *testing.T, name, token string) {
	t.Helper()
	require.NoError(t, f.store.SaveSession(domain.UserInfo{Name: name, Token: token}))
}

func TestCreate_PasswordMismatchMakesNoRequest(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	err := create([]string{"ana", "hunter2", "hunter3"}, f.deps)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrPasswordMismatch, ue.Kind)
	require.Zero(t, f.server.Hits())
}

func TestCreate_Success(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	require.NoError(t, create([]string{"ana", "pw", "pw"}, f.deps))

	reqs := f.server.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, "POST", reqs[0].Method)
	require.Equal(t, "/themes/user/create", reqs[0].Path)
	require.Equal(t, map[string]string{"name": "ana", "pass": "pw"}, reqs[0].Query)
	require.Equal(t, "Successfully created user. Now, sign in with `raven login [name] [password]`\n", f.out.String())
}

func TestCreate_Failures(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusForbidden, "raven: User already created. Pick a different name!"},
		{http.StatusRequestEntityTooLarge, "raven: Either your username or password was too long. The limit is 20 characters for username, and 100 for password."},
		{http.StatusInternalServerError, "raven: server error. Code 500"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			f := newFixture(t, testutil.Status(tt.code))

			err := create([]string{"ana", "pw", "pw"}, f.deps)
			require.EqualError(t, err, tt.want)
			require.Empty(t, f.out.String())
		})
	}
}

func TestLogin_SavesSession(t *testing.T) {
	f := newFixture(t, testutil.Body(http.StatusOK, []byte(`{"name":"ana","token":"t0k"}`)))

	require.NoError(t, login([]string{"ana", "pw"}, f.deps))

	info, err := f.store.LoadSession()
	require.NoError(t, err)
	require.Equal(t, domain.UserInfo{Name: "ana", Token: "t0k"}, info)
	require.Contains(t, f.out.String(), "Successfully signed in.")

	req := f.server.Requests()[0]
	require.Equal(t, "GET /themes/user/login", req.Method+" "+req.Path)
	require.Equal(t, "pw", req.Query["pass"])
}

func TestLogin_WrongCredentialsKeepsPreviousSession(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusForbidden))
	f.login(t, "bob", "old")

	err := login([]string{"ana", "bad"}, f.deps)
	require.EqualError(t, err, "raven: Wrong login info. Try again!")
	require.True(t, remote.IsKind(err, remote.KindBadCredentials))

	info, err := f.store.LoadSession()
	require.NoError(t, err)
	require.Equal(t, "bob", info.Name)
}

func TestLogin_UndecodableBody(t *testing.T) {
	f := newFixture(t, testutil.Body(http.StatusOK, []byte(`not json`)))

	err := login([]string{"ana", "pw"}, f.deps)
	require.Error(t, err)

	var de *remote.DecodeError
	require.True(t, errors.As(err, &de))

	_, err = f.store.LoadSession()
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
}

func TestLogout(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))
	f.login(t, "ana", "t0k")

	require.NoError(t, logout(nil, f.deps))
	require.Equal(t, "Successfully logged you out\n", f.out.String())

	_, err := f.store.LoadSession()
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
}

func TestLogout_NotLoggedIn(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	err := logout(nil, f.deps)
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
	require.Contains(t, err.Error(), "not logged in")
}

func TestWhoami(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	require.ErrorIs(t, whoami(nil, f.deps), store.ErrNotLoggedIn)

	f.login(t, "ana", "t0k")
	require.NoError(t, whoami(nil, f.deps))
	require.Equal(t, "Logged in as ana\n", f.out.String())
	require.Zero(t, f.server.Hits())
}

func TestDelete_Success(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))
	f.login(t, "ana", "t0k")

	require.NoError(t, deleteUser([]string{"pw"}, f.deps))

	req := f.server.Requests()[0]
	require.Equal(t, "POST /themes/users/delete/ana", req.Method+" "+req.Path)
	require.Equal(t, map[string]string{"token": "t0k", "pass": "pw"}, req.Query)
	require.Equal(t, "Successfully deleted user and all owned themes. Logging out\n", f.out.String())

	_, err := f.store.LoadSession()
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
}

func TestDelete_FailureKeepsSession(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusForbidden, "raven: You are trying to delete a user you are not."},
		{http.StatusUnauthorized, "raven: You're trying to delete a user without providing adequate authentication credentials."},
		{http.StatusNotFound, "raven: You're trying to delete a user that doesn't exist."},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			f := newFixture(t, testutil.Status(tt.code))
			f.login(t, "ana", "t0k")

			require.EqualError(t, deleteUser([]string{"pw"}, f.deps), tt.want)

			_, err := f.store.LoadSession()
			require.NoError(t, err)
		})
	}
}

func TestDelete_NotLoggedInMakesNoRequest(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	err := deleteUser([]string{"pw"}, f.deps)
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
	require.Zero(t, f.server.Hits())
}

func TestMissingArguments(t *testing.T) {
	f := newFixture(t, testutil.Status(http.StatusOK))

	for name, fn := range map[string]func([]string, Deps) error{
		"create": create,
		"login":  login,
		"delete": deleteUser,
	} {
		t.Run(name, func(t *testing.T) {
			var ue *usage.Error
			require.True(t, errors.As(fn(nil, f.deps), &ue))
			require.Equal(t, usage.ErrMissingArgument, ue.Kind)
		})
	}
	require.Zero(t, f.server.Hits())
}
