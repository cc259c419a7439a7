package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ayurtrack/authd/internal/auth/store"
	"github.com/ayurtrack/authd/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL",
		filepath.Join(t.TempDir(), "authd-test.db"))

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUserService_SignupAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Signup(ctx, "alice123", "longpass1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice123", user.Username)
	require.NotEqual(t, "longpass1", user.PasswordHash, "password must never be stored in plaintext")

	t.Run("correct credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "alice123", "longpass1")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("trims username", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "  alice123  ", "longpass1")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice123", "wrong")
		require.ErrorIs(t, err, ErrPasswordIncorrect)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody99", "longpass1")
		require.ErrorIs(t, err, ErrUnknownUsername)
	})
}

func TestUserService_DuplicateSignup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	_, err := svc.Signup(ctx, "bob", "longpass1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "bob", "otherpass1")
	require.ErrorIs(t, err, ErrUsernameTaken)

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count, "rejected signup must not create a record")

	// The original credentials still authenticate
	_, err = svc.Authenticate(ctx, "bob", "longpass1")
	require.NoError(t, err)
}

func TestUserService_ConcurrentSignup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	const attempts = 4
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Signup(ctx, "carol", "longpass1")
		}()
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, ErrUsernameTaken)
		}
	}
	require.Equal(t, 1, won, "exactly one concurrent signup may succeed")

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUserService_ResolveUsername(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	created, err := svc.Signup(ctx, "dave", "longpass1")
	require.NoError(t, err)

	got, err := svc.ResolveUsername(ctx, "dave")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = svc.ResolveUsername(ctx, "ghost")
	require.ErrorIs(t, err, ErrUnknownUsername)
}
