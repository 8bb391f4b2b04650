package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobhunt/internal/client/config"
	"github.com/dmitrijs2005/jobhunt/internal/client/services"
	"github.com/dmitrijs2005/jobhunt/internal/client/storage"
	"github.com/dmitrijs2005/jobhunt/internal/logging"
)

// App is the REPL front end over the JobHunt stores.
type App struct {
	config   *config.Config
	log      logging.Logger
	storage  *storage.Storage
	accounts services.AccountService
	catalog  services.CatalogService
	profile  services.ProfileService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens storage selected by c, loads both stores and returns an App
// reading commands from stdin.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening storage", "driver", c.StorageDriver, "error", err)
		return nil, err
	}

	accounts := services.NewAccountService(st.Metadata, services.AccountOptions{
		PasswordScheme: c.PasswordScheme,
		SessionSecret:  []byte(c.SessionSecret),
		SessionTTL:     c.SessionTTL,
		Logger:         log,
	})
	catalog := services.NewCatalogService(st.Metadata, log, nil)

	if err := accounts.Load(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if err := catalog.Load(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &App{
		config:   c,
		log:      log,
		storage:  st,
		accounts: accounts,
		catalog:  catalog,
		profile:  services.NewProfileService(accounts, catalog),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to JobHunt (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the storage handle.
func (a *App) Close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing storage", "error", err)
	}
	a.storage = nil
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsAuthenticated()
}

// getStatus renders the prompt prefix: the signed-in user and the theme.
func (a *App) getStatus() string {
	s := a.catalog.Theme()
	if u := a.accounts.CurrentUser(); u != nil {
		s = u.Name + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail prints err for the user and returns it unchanged.
func (a *App) fail(err error) error {
	a.println("Error:", err)
	return err
}
