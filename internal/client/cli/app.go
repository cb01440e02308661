package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/khebbar/ayuda-cli/internal/client/api"
	"github.com/khebbar/ayuda-cli/internal/client/config"
	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/services"
	"github.com/khebbar/ayuda-cli/internal/client/session"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

type App struct {
	config    *config.Config
	session   *session.Store
	auth      services.AuthService
	profiles  services.ProfileService
	recommend services.RecommendationService
	search    *searchController
	log       logging.Logger
	reader    *bufio.Reader

	// resumeUploaded flips when a resume goes up in this run; together with
	// the server-side profile_enhanced flag it gates the recommendation
	// commands.
	resumeUploaded bool

	// lastResult holds the most recent match payload in memory. The
	// recommendations view prefers it over a stored fetch.
	lastResult *models.Recommendation
}

func NewApp(c *config.Config, log logging.Logger) *App {
	store := session.NewStore()

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)
	apiClient.SetOnUnauthorized(func() {
		fmt.Println("Session expired. Please log in again.")
	})

	profiles := services.NewProfileService(apiClient, log)

	return &App{
		config:    c,
		session:   store,
		auth:      services.NewAuthService(apiClient, store, log),
		profiles:  profiles,
		recommend: services.NewRecommendationService(apiClient, store, log),
		search:    newSearchController(profiles, c.SearchDebounce, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}
}

// Run restores any existing session, then blocks in the REPL until the user
// exits.
func (a *App) Run(ctx context.Context) {
	init := a.auth.InitializeSession(ctx)
	if init.Authenticated {
		fmt.Printf("Welcome back, %s!\n", init.User.FirstName)
	}

	fmt.Println("Welcome to Ayuda (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// intakeReady reports whether the user may request recommendations: a resume
// was uploaded this run, or the stored profile was already enhanced.
func (a *App) intakeReady() bool {
	if a.resumeUploaded {
		return true
	}
	if u := a.session.User(); u != nil {
		return u.ProfileEnhanced
	}
	return false
}
