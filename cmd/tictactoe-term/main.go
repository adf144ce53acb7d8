package main

import (
    "flag"
    "os"

    "go.uber.org/zap"

    "github.com/jaminalder/tictactoe-history/internal/config"
    "github.com/jaminalder/tictactoe-history/internal/term"
)

func main() {
    cfgPath := flag.String("config", "config.yml", "path to an optional YAML config file")
    noColor := flag.Bool("no-color", false, "disable colored output")
    flag.Parse()

    cfg := config.MustLoad(*cfgPath)
    cfg.LogFormat = "console"
    logger, err := cfg.NewLogger()
    if err != nil {
        panic("failed to initialize logger: " + err.Error())
    }
    defer logger.Sync() //nolint:errcheck

    s := term.NewSession(os.Stdin, os.Stdout, !cfg.NoColor && !*noColor)
    if err := s.Run(); err != nil {
        logger.Fatalw("input failed", zap.Error(err))
    }
}
