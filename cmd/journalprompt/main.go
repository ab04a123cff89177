package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"journalguru/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(cli.Deps{
		Clipboard:  cli.SystemClipboard{},
		HTTPClient: &http.Client{},
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
