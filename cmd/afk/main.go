package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/stigoleg/afk/internal/cli"
)

// Set at build time with -ldflags "-X main.appVersion=...".
var appVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), getSignalsForPlatform()...)
	defer stop()

	if err := cli.NewRootCommand(appVersion).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
