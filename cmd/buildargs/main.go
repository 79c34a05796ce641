// Package main is the entry point for the buildargs CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildargs/cmd/buildargs/commands"
	"go.trai.ch/buildargs/internal/adapters/logger"
	"go.trai.ch/buildargs/internal/app"
	"go.trai.ch/buildargs/internal/core/domain"
	_ "go.trai.ch/buildargs/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*commands.CLI),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if lg, ok := components.Logger.(*logger.Logger); ok {
		cli.SetJSONHook(lg.SetJSON)
	}
	for _, opt := range opts {
		opt(cli)
	}

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrArgumentFalse) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
