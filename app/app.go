package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Sagaustus/spyral-translation/config"
	httpapi "github.com/Sagaustus/spyral-translation/internal/api/http"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/admin"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/auth"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/Sagaustus/spyral-translation/internal/staleaudit"
	"github.com/Sagaustus/spyral-translation/internal/store"
)

const shutdownTimeout = 15 * time.Second

// App is the main application
type App struct {
	hs         *httpapi.Server
	db         *store.MYSQLStore
	authS      *auth.Server
	staleAudit *staleaudit.Worker
	c          *config.Config
	done       chan struct{}
	stopOnce   sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting translation service")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	a.authS, err = auth.New(&a.c.Auth, a.db.Users(), a.db.Assignments())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	adminS := admin.New(l10n.New(a.db))

	if a.c.StaleAudit.Enabled {
		a.staleAudit = staleaudit.New(&a.c.StaleAudit, a.db)
		if err = a.staleAudit.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot start stale audit worker", slog.String("err", err.Error()))
			return err
		}
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, a.authS, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.shutdown()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("err", err.Error()))
		}
		<-a.hs.Done()
	}
	a.shutdown()
}

func (a *App) shutdown() {
	a.stopOnce.Do(a.release)
}

func (a *App) release() {
	if a.staleAudit != nil {
		if err := a.staleAudit.Stop(); err != nil {
			slog.Default().Error("stale audit worker stop failed", slog.String("err", err.Error()))
		}
	}
	if a.authS != nil {
		a.authS.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
