package main

import (
    "context"
    "errors"
    "flag"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "go.uber.org/zap"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/config"
    "github.com/jaminalder/tictactoe-history/internal/web"
)

func main() {
    cfgPath := flag.String("config", "config.yml", "path to an optional YAML config file")
    flag.Parse()

    cfg := config.MustLoad(*cfgPath)
    logger, err := cfg.NewLogger()
    if err != nil {
        panic("failed to initialize logger: " + err.Error())
    }
    defer logger.Sync() //nolint:errcheck

    if err := run(cfg, logger); err != nil {
        logger.Fatalw("server stopped", zap.Error(err))
    }
}

func run(cfg *config.Config, logger *zap.SugaredLogger) error {
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    svc := app.NewService(app.WithLogger(logger.Named("games")))
    go svc.RunSweeper(ctx, cfg.SweepInterval, cfg.SessionTTL)

    srv := &http.Server{
        Addr: cfg.HTTPAddr,
        Handler: web.NewServer(svc,
            web.WithLogger(logger.Named("http")),
            web.WithCookieTTL(cfg.SessionTTL),
        ),
        ReadHeaderTimeout: 5 * time.Second,
    }

    errCh := make(chan error, 1)
    go func() {
        logger.Infow("listening", "addr", cfg.HTTPAddr)
        errCh <- srv.ListenAndServe()
    }()

    select {
    case err := <-errCh:
        if errors.Is(err, http.ErrServerClosed) {
            return nil
        }
        return err
    case <-ctx.Done():
        logger.Infow("shutting down")
    }

    shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
    defer cancel()
    return srv.Shutdown(shutdownCtx)
}
