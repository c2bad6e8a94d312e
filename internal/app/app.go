package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"photo-masker/internal/config"
	mask_h "photo-masker/internal/http-server/handler/mask"
	"photo-masker/internal/http-server/router"
	mask_fs "photo-masker/internal/repository/mask/fs"
	"photo-masker/internal/repository/photo/httpclient"
	mask_uc "photo-masker/internal/usecase/mask"
	"photo-masker/internal/usecase/processor"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg    *config.Config
	server *http.Server
	logger *zlog.Zerolog
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	// The catalog must load before the server accepts traffic; an empty
	// catalog is fatal.
	catalog, err := mask_fs.NewCatalog(cfg.Masks.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load mask catalog: %w", err)
	}

	fetcher := httpclient.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxImageSize)
	selector := processor.NewSelector(nil)
	compositor := processor.NewCompositor()

	maskUsecase := mask_uc.NewMaskUsecase(catalog, fetcher, selector, compositor, logger, cfg.Fetch.MaxImageSize)

	maskHandler := mask_h.NewMaskHandler(maskUsecase, logger, cfg.Fetch.MaxImageSize)

	h := &router.Handler{
		MaskHandler: maskHandler,
		APIKey:      cfg.Auth.APIKey,
	}

	mux := router.SetupRouter(h)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("addr", a.cfg.Server.Addr).Bool("auth_enabled", a.cfg.Auth.APIKey != "").Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
