package service

import (
	"net/http"

	"cleanblog/internal/config"

	"github.com/gorilla/sessions"
)

const (
	SessionName = "session"
	sessionUser = "user"
)

// AuthService guards the dashboard. The session is a signed client-held
// cookie carrying the authenticated username; there is no rotation or expiry.
// The credential check is exact string equality against the configured admin
// pair — a hashed strategy can be substituted here without touching the
// controllers.
type AuthService interface {
	Authenticate(username, password string) bool
	CurrentUser(r *http.Request) (string, bool)
	SignIn(w http.ResponseWriter, r *http.Request, username string) error
	SignOut(w http.ResponseWriter, r *http.Request) error
}

type authService struct {
	cfg   *config.Config
	store sessions.Store
}

func NewAuthService(cfg *config.Config, store sessions.Store) AuthService {
	return &authService{
		cfg:   cfg,
		store: store,
	}
}

func (s *authService) Authenticate(username, password string) bool {
	return username == s.cfg.AdminUsername && password == s.cfg.AdminPassword
}

// CurrentUser returns the session username when it matches the configured
// admin username.
func (s *authService) CurrentUser(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, SessionName)
	if err != nil {
		return "", false
	}

	username, ok := session.Values[sessionUser].(string)
	if !ok || username != s.cfg.AdminUsername {
		return "", false
	}

	return username, true
}

func (s *authService) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := s.store.Get(r, SessionName)
	session.Values[sessionUser] = username
	return session.Save(r, w)
}

func (s *authService) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName)
	delete(session.Values, sessionUser)
	return session.Save(r, w)
}
