package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"envloader/internal/config"
	"envloader/internal/dotenv"
	"envloader/internal/httpapi"
)

var (
	loadSettings   = config.LoadSettings
	loadApp        = config.LoadApp
	listenAndServe = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownServer = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("envloader failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	logger := newLogger(stderr, settings.LogLevel)

	path := settings.Path
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	loader := dotenv.New(dotenv.OSEnvironment{}, dotenv.Options{
		MaxLineLength: settings.MaxLineLength,
		Logger:        logger,
	})
	// An unreadable file is reported and the demo carries on with whatever
	// environment the process already had.
	report, loadErr := loader.Load(path)

	app, err := loadApp()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	printApp(stdout, app)

	if settings.ExportPath != "" && loadErr == nil {
		if err := report.Export(settings.ExportPath); err != nil {
			return fmt.Errorf("export %s: %w", settings.ExportPath, err)
		}
		logger.Info("exported env file",
			slog.String("path", settings.ExportPath),
			slog.Int("keys", len(report.Keys())),
		)
		if keys := report.NonPortable(); len(keys) > 0 {
			logger.Warn("exported values read differently by other dotenv tools",
				slog.String("path", settings.ExportPath),
				slog.Any("keys", keys),
			)
		}
	}

	if !settings.Serve {
		return nil
	}
	api := httpapi.New(report, dotenv.OSEnvironment{}, buildSettings(settings), logger)
	return serve(ctx, logger, buildServer(app.ListenAddr(), api.Handler()))
}

func buildSettings(settings config.Settings) httpapi.Settings {
	return httpapi.Settings{
		RequestLimit:  settings.RateLimit,
		RequestWindow: settings.RateWindow,
	}
}

func printApp(w io.Writer, app config.App) {
	fmt.Fprintf(w, "PORT: %s\n", orNull(app.Port))
	fmt.Fprintf(w, "HOST: %s\n", orNull(app.Host))
	fmt.Fprintf(w, "ADDR: %s\n", orNull(app.Addr))
}

func orNull(v string) string {
	if v == "" {
		return "(null)"
	}
	return v
}

func buildServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server) error {
	listen, shutdown := listenAndServe, shutdownServer
	errCh := make(chan error, 1)
	go func() {
		logger.Info("envloader listening", slog.String("addr", srv.Addr))
		if err := listen(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(srv, shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
