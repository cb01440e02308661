// Package services contains the application flows of the Ayuda client. Each
// service orchestrates gateway calls and session state; screens stay thin.
package services

import (
	"context"

	"github.com/khebbar/ayuda-cli/internal/client/api"
	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/session"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

// SessionInit is the typed outcome of startup session restoration.
type SessionInit struct {
	Authenticated bool
	User          *models.User
}

// AuthService defines the authentication flow.
//
// Contract:
//   - InitializeSession: explicit one-shot restoration at startup; fails open
//     to anonymous with no visible error.
//   - Login: exchange credentials for a token, fetch the user, populate the
//     session.
//   - Signup: create an account; does not authenticate.
//   - Logout: clear the session.
type AuthService interface {
	InitializeSession(ctx context.Context) SessionInit
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, req *models.SignupRequest) error
	Logout()
	IsAuthenticated() bool
}

type authService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger
}

func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, session: store, log: log}
}

// InitializeSession restores an existing session, if any. This is the one
// place a failure is allowed to pass silently: a stale token simply leaves
// the client anonymous.
func (a *authService) InitializeSession(ctx context.Context) SessionInit {
	if !a.session.IsAuthenticated() {
		return SessionInit{}
	}

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.log.Debug(ctx, "session restoration failed, starting anonymous", "err", err)
		a.session.Clear()
		return SessionInit{}
	}

	a.session.SetUser(user)
	return SessionInit{Authenticated: true, User: user}
}

// Login submits the credentials as a form body, stores the returned token and
// scheme, then fetches the authenticated user and caches it.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	a.session.SetToken(tok.AccessToken, tok.TokenType)

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	a.session.SetUser(user)

	a.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

// Signup creates the account; the caller returns to the login screen, no
// token is issued here.
func (a *authService) Signup(ctx context.Context, req *models.SignupRequest) error {
	return a.client.Signup(ctx, req)
}

func (a *authService) Logout() {
	a.session.Clear()
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}
