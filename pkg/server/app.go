package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"MarketPulse/pkg/config"
	xhttp "MarketPulse/pkg/http"
	applogger "MarketPulse/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
	closers    []io.Closer
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *App {
	return &App{cfg: cfg, logger: logger, handler: handler}
}

// AddCloser registers an infrastructure client to close on shutdown.
func (a *App) AddCloser(c io.Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	// Start HTTP server
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops the HTTP server and closes infrastructure clients.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
