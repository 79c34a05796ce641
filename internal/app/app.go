// Package app implements the application layer for buildargs.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildargs/internal/adapters/argstore"
	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/buildargs/internal/core/ports"
	"go.trai.ch/buildargs/internal/engine/arguments"
	"go.trai.ch/buildargs/internal/engine/convert"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	registry *convert.Registry
}

// New creates a new App instance.
func New(log ports.Logger, registry *convert.Registry) *App {
	return &App{
		logger:   log,
		registry: registry,
	}
}

// Request describes where the arguments of a build run come from.
type Request struct {
	// Args are the build arguments given on the command line.
	Args []string
	// ArgsFiles are YAML args files; later files override earlier ones.
	ArgsFiles []string
	// EnvFiles are dotenv files; later files override earlier ones.
	EnvFiles []string
	// EnvPrefix selects the environment variables read as arguments.
	EnvPrefix string
	// Environ is the environment in KEY=value form. Nil reads no environment.
	Environ []string
}

// GetOptions configures Get.
type GetOptions struct {
	Name string
	// Type is the name of the target type, "string" when empty.
	Type string
	// Default is returned verbatim when the argument is absent.
	Default *string
}

// Store assembles the argument store for req. Precedence from highest to
// lowest is: command line, env files, args files, environment.
func (a *App) Store(ctx context.Context, req Request) (ports.ArgumentStore, error) {
	cli, err := argstore.ParseCommandLine(req.Args)
	if err != nil {
		return nil, err
	}

	envFiles := make([]*argstore.Store, len(req.EnvFiles))
	argsFiles := make([]*argstore.Store, len(req.ArgsFiles))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range req.EnvFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := argstore.LoadDotenv(path)
			envFiles[i] = s
			return err
		})
	}
	for i, path := range req.ArgsFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := argstore.LoadFile(path)
			argsFiles[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrStoreLoadFailed, err)
	}

	if req.EnvPrefix == "" && len(req.Environ) > 0 {
		a.logger.Warn("no environment prefix set, every environment variable is read as an argument")
	}

	layers := []ports.ArgumentStore{cli}
	for _, s := range slices.Backward(envFiles) {
		layers = append(layers, s)
	}
	for _, s := range slices.Backward(argsFiles) {
		layers = append(layers, s)
	}
	layers = append(layers, argstore.FromEnvironment(req.EnvPrefix, req.Environ))

	return argstore.NewLayered(layers...), nil
}

func (a *App) accessor(ctx context.Context, req Request) (*arguments.Accessor, error) {
	store, err := a.Store(ctx, req)
	if err != nil {
		return nil, err
	}
	return arguments.New(store, arguments.WithRegistry(a.registry))
}

// Has reports whether the argument name was supplied.
func (a *App) Has(ctx context.Context, req Request, name string) (bool, error) {
	acc, err := a.accessor(ctx, req)
	if err != nil {
		return false, err
	}
	return acc.HasArgument(name), nil
}

// Get returns the argument converted to opts.Type and rendered in the
// canonical text form of that type.
func (a *App) Get(ctx context.Context, req Request, opts GetOptions) (string, error) {
	typeName := strings.ToLower(opts.Type)
	if typeName == "" {
		typeName = "string"
	}
	get, ok := typedGetters[typeName]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownType, "unsupported type name")
		return "", zerr.With(zerr.With(err, "type", opts.Type), "supported", strings.Join(Types(), ", "))
	}

	acc, err := a.accessor(ctx, req)
	if err != nil {
		return "", err
	}

	if opts.Default != nil && !acc.HasArgument(opts.Name) {
		return *opts.Default, nil
	}
	return get(acc, opts.Name)
}

// List returns every supplied argument with its effective value.
func (a *App) List(ctx context.Context, req Request) ([]domain.Entry, error) {
	acc, err := a.accessor(ctx, req)
	if err != nil {
		return nil, err
	}

	store := acc.Store()
	names := store.Names()
	entries := make([]domain.Entry, 0, len(names))
	for _, name := range names {
		value, _ := store.GetArgument(name)
		entries = append(entries, domain.Entry{Name: name, Value: value})
	}
	return entries, nil
}

// Fingerprint hashes the effective argument set. The result does not depend
// on the order arguments were given in, only on names and values, so it can
// be part of a build cache key.
func (a *App) Fingerprint(ctx context.Context, req Request) (string, error) {
	acc, err := a.accessor(ctx, req)
	if err != nil {
		return "", err
	}

	store := acc.Store()
	h := xxhash.New()
	for _, name := range store.Names() {
		values := store.GetArguments(name)
		writeField(h, name)
		writeField(h, strconv.Itoa(len(values)))
		for _, v := range values {
			writeField(h, v)
		}
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// writeField writes s prefixed with its length.
func writeField(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(strconv.Itoa(len(s)))
	_, _ = h.WriteString(":")
	_, _ = h.WriteString(s)
}
