package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/api"
)

type fakeVerifier struct {
	token string
	err   error
}

func (f *fakeVerifier) VerifyAdminPassword(ctx context.Context, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

type fakeFlag struct {
	authenticated bool
	token         string
	setErr        error
}

func (f *fakeFlag) AdminAuthenticated() bool { return f.authenticated }

func (f *fakeFlag) SetAdminAuthenticated(authenticated bool, token string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.authenticated = authenticated
	f.token = token
	return nil
}

func TestSessionLogin(t *testing.T) {
	t.Run("backend accepts", func(t *testing.T) {
		flag := &fakeFlag{}
		s := NewSession(&fakeVerifier{token: "tok"}, flag, "fallback", zap.NewNop())

		require.NoError(t, s.Login(context.Background(), "secret"))
		assert.True(t, flag.authenticated)
		assert.Equal(t, "tok", flag.token)
	})

	t.Run("backend rejects", func(t *testing.T) {
		flag := &fakeFlag{}
		verifier := &fakeVerifier{err: &api.StatusError{Op: "POST /admin/verify-password", Code: http.StatusUnauthorized}}
		s := NewSession(verifier, flag, "fallback", zap.NewNop())

		err := s.Login(context.Background(), "wrong")
		require.ErrorIs(t, err, ErrInvalidPassword)
		assert.False(t, flag.authenticated)
	})

	t.Run("backend unreachable, fallback matches", func(t *testing.T) {
		flag := &fakeFlag{}
		verifier := &fakeVerifier{err: errors.New("connection refused")}
		s := NewSession(verifier, flag, "fallback", zap.NewNop())

		require.NoError(t, s.Login(context.Background(), "fallback"))
		assert.True(t, flag.authenticated)
		assert.Empty(t, flag.token)
	})

	t.Run("backend unreachable, fallback mismatch", func(t *testing.T) {
		flag := &fakeFlag{}
		verifier := &fakeVerifier{err: errors.New("connection refused")}
		s := NewSession(verifier, flag, "fallback", zap.NewNop())

		err := s.Login(context.Background(), "wrong")
		require.ErrorIs(t, err, ErrInvalidPassword)
		assert.False(t, flag.authenticated)
	})
}

func TestSessionLogout(t *testing.T) {
	flag := &fakeFlag{authenticated: true, token: "tok"}
	s := NewSession(&fakeVerifier{}, flag, "fallback", zap.NewNop())

	require.NoError(t, s.Logout())
	assert.False(t, flag.authenticated)
	assert.Empty(t, flag.token)
	assert.False(t, s.Authenticated())
}
