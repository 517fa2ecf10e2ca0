// Package main provides the entry point for the devdays CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Sumatoshi-tech/devdays/cmd/devdays/commands"
	"github.com/Sumatoshi-tech/devdays/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
