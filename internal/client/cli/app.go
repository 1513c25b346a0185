// Package cli implements the interactive FinLedger terminal client: a
// small REPL gated on the session state.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/finledger/finledger/internal/client/api"
	"github.com/finledger/finledger/internal/client/config"
	"github.com/finledger/finledger/internal/client/session"
	"github.com/finledger/finledger/internal/filex"
)

const appName = "finledger"

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)

	stateDir, err := filex.EnsureStateDir(appName)
	if err != nil {
		return nil, err
	}
	store := session.NewFileTokenStore(stateDir)

	return &App{
		config:  c,
		api:     apiClient,
		session: session.NewSession(apiClient, store),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves any persisted session in the background and hands control
// to the REPL.
func (a *App) Run(ctx context.Context) {
	go a.session.Resolve(ctx)
	a.Root(ctx)
}
