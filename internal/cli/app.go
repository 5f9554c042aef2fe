package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/config"
	"github.com/e-lobo/herogram-go/internal/logging"
	"github.com/e-lobo/herogram-go/internal/models"
	"github.com/e-lobo/herogram-go/internal/services"
	"github.com/e-lobo/herogram-go/internal/session"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	files  services.FileService
	store  session.Store
	log    logging.Logger

	user *models.User

	// listed is the snapshot of the most recent "list", keyed by file id,
	// used to resolve download names. Stale until the next fetch.
	listed map[string]models.File

	// shareStats accumulates share statistics per file id.
	shareStats map[string][]models.Share

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	tokenPath, err := session.DefaultTokenPath()
	if err != nil {
		return nil, fmt.Errorf("resolving token path: %w", err)
	}
	store := session.NewFileStore(tokenPath)

	authClient := api.NewClient(c.APIBaseURL, log)
	fileClient := api.NewAuthorizedClient(c.APIBaseURL, store, log)

	app := &App{
		config:     c,
		auth:       services.NewAuthService(authClient),
		files:      services.NewFileService(fileClient),
		store:      store,
		log:        log,
		listed:     make(map[string]models.File),
		shareStats: make(map[string][]models.Share),
		reader:     bufio.NewReader(os.Stdin),
	}

	// A surviving token keeps the user logged in; the decode is unverified
	// and for display only — the server re-checks on every call.
	if token, ok := store.Token(); ok {
		if u, ok := session.ParseJWT(token); ok {
			app.user = u
		}
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.user != nil && a.user.Email != "" {
		return a.user.Email
	}
	if a.isLoggedIn() {
		return "logged in"
	}
	return "guest"
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Herogram CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
