package admin

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/api"
)

// ErrInvalidPassword is a wrong admin password, whichever side checked it.
var ErrInvalidPassword = errors.New("mot de passe incorrect")

// PasswordVerifier is the slice of the backend client the session needs.
type PasswordVerifier interface {
	VerifyAdminPassword(ctx context.Context, password string) (string, error)
}

// Flag persists the authenticated marker between sessions.
type Flag interface {
	AdminAuthenticated() bool
	SetAdminAuthenticated(authenticated bool, token string) error
}

// Session is the admin login state: a persisted boolean flag plus whatever
// token the backend handed out. The backend check is preferred; when the
// backend is unreachable or has no verify route, the configured fallback
// password applies. This is a gate for the panel, not a credential system.
type Session struct {
	backend          PasswordVerifier
	flag             Flag
	fallbackPassword string
	log              *zap.Logger
}

func NewSession(backend PasswordVerifier, flag Flag, fallbackPassword string, log *zap.Logger) *Session {
	return &Session{
		backend:          backend,
		flag:             flag,
		fallbackPassword: fallbackPassword,
		log:              log,
	}
}

func (s *Session) Authenticated() bool {
	return s.flag.AdminAuthenticated()
}

// Login verifies the password and persists the authenticated flag. A backend
// 401 means a wrong password; any other backend failure falls back to the
// local comparison.
func (s *Session) Login(ctx context.Context, password string) error {
	token, err := s.backend.VerifyAdminPassword(ctx, password)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
			return ErrInvalidPassword
		}

		s.log.Debug("backend password check unavailable, using local fallback", zap.Error(err))
		if password != s.fallbackPassword {
			return ErrInvalidPassword
		}
		token = ""
	}

	return s.flag.SetAdminAuthenticated(true, token)
}

func (s *Session) Logout() error {
	return s.flag.SetAdminAuthenticated(false, "")
}
