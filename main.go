package main

import (
	"context"
	"log/slog"
	"os"
)

// App is the global wrapper around the cli command tree and the clients the
// commands share. Set once at startup.
var App *SolstakeApp

func main() {
	App = initApp()

	err := App.cliCmd.Run(context.Background(), os.Args)
	if err != nil {
		slog.Error("Error", "msg", err)
		os.Exit(1)
	}
}
