package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"authboard/initialize"
	"authboard/server"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file; environment variables take precedence")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}

	app.Log.Info().
		Str("host", app.Cfg.Server.Host).
		Int("port", app.Cfg.Server.Port).
		Str("db", app.Cfg.DB.Driver).
		Msg("listening")

	if err := server.Run(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router, app.Log); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.Log.Fatal().Err(err).Msg("server error")
	}
}
