package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/services"
	"github.com/khebbar/ayuda-cli/internal/client/session"
)

// stubInputs replaces the interactive input helpers with canned values. Text
// prompts are answered in order; the password is returned verbatim.
func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			t.Fatalf("unexpected prompt #%d", i+1)
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuthSvc struct {
	loginEmail string
	loginPass  string
	loginUser  *models.User
	loginErr   error

	signupReq *models.SignupRequest
	signupErr error

	loggedOut bool
}

func (f *fakeAuthSvc) InitializeSession(context.Context) services.SessionInit {
	return services.SessionInit{}
}
func (f *fakeAuthSvc) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginUser != nil {
		return f.loginUser, nil
	}
	return &models.User{Email: email, FirstName: "Alice"}, nil
}
func (f *fakeAuthSvc) Signup(_ context.Context, req *models.SignupRequest) error {
	f.signupReq = req
	return f.signupErr
}
func (f *fakeAuthSvc) Logout()               { f.loggedOut = true }
func (f *fakeAuthSvc) IsAuthenticated() bool { return false }

func TestLogin_Success(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f, session: session.NewStore()}

	stubInputs(t, []string{"alice@example.org"}, []byte("Passw0rd"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "alice@example.org" {
		t.Fatalf("email mismatch: %q", f.loginEmail)
	}
	if f.loginPass != "Passw0rd" {
		t.Fatalf("password mismatch: %q", f.loginPass)
	}
}

func TestLogin_InvalidEmailSkipsService(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f, session: session.NewStore()}

	stubInputs(t, []string{"not-an-email"}, []byte("Passw0rd"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "" {
		t.Fatalf("service called despite invalid email: %q", f.loginEmail)
	}
}

func TestSignup_ShortAccessCodeStopsEarly(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f, session: session.NewStore()}

	// Only the access-code prompt is answered. A second prompt would fail
	// the test via the stub.
	stubInputs(t, []string{"abc"}, nil)

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.signupReq != nil {
		t.Fatalf("service called despite invalid access code")
	}
}

func TestSignup_Success(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f, session: session.NewStore()}

	stubInputs(t, []string{
		"LET-ME-IN",
		"Alice",
		"",
		"State University",
		"alice@example.org",
		"Computer Science",
		"2000-01-15",
	}, []byte("Passw0rd"))

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.signupReq == nil {
		t.Fatal("signup never reached the service")
	}
	if f.signupReq.Email != "alice@example.org" {
		t.Fatalf("email mismatch: %q", f.signupReq.Email)
	}
	if f.signupReq.AccessCode != "LET-ME-IN" {
		t.Fatalf("access code mismatch: %q", f.signupReq.AccessCode)
	}
	if f.signupReq.LastName != "" {
		t.Fatalf("last name should be allowed empty, got %q", f.signupReq.LastName)
	}
}

func TestSignup_WeakPasswordSkipsService(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f, session: session.NewStore()}

	stubInputs(t, []string{
		"LET-ME-IN",
		"Alice",
		"Smith",
		"State University",
		"alice@example.org",
		"Computer Science",
		"2000-01-15",
	}, []byte("short"))

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.signupReq != nil {
		t.Fatalf("service called despite weak password")
	}
}

func TestLogout_DropsViewState(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{
		auth:           f,
		session:        session.NewStore(),
		lastResult:     &models.Recommendation{TotalMatches: 3},
		resumeUploaded: true,
	}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.loggedOut {
		t.Fatal("service Logout not called")
	}
	if a.lastResult != nil {
		t.Fatal("recommendation payload survived logout")
	}
	if a.resumeUploaded {
		t.Fatal("resume flag survived logout")
	}
}
