package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/comalice/staticcell"
	"github.com/comalice/staticcell/internal/logging"
	"github.com/comalice/staticcell/staticconfig"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	envPrefix = "DEMO_"

	// defaultSnapshotName is used when the service name is not a usable file name.
	defaultSnapshotName = "config"
)

func main() {
	configPath := flag.String("config", "cmd/demo/demo.yaml", "config file (.yaml, .toml or .json)")
	snapshotDir := flag.String("snapshot", "", "directory to persist the loaded config into")
	readers := flag.Int("readers", 0, "reader goroutines; 0 uses the configured workers")
	flag.Parse()

	logger := logging.ConfigureRuntime()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *snapshotDir, *readers); err != nil {
		logger.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, logger zerolog.Logger, configPath, snapshotDir string, readers int) error {
	cfg, err := staticconfig.Load[Config, Config](configPath,
		staticconfig.WithEnvPrefix(envPrefix),
		staticconfig.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if snapshotDir != "" {
		p, err := staticconfig.NewYAMLPersister(snapshotDir)
		if err != nil {
			return err
		}
		name := snapshotName(cfg.Get().Service)
		if err := staticconfig.Persist(ctx, p, name, cfg); err != nil {
			return fmt.Errorf("persist snapshot: %w", err)
		}
		logger.Info().Str("path", p.Path(name)).Msg("snapshot written")
	}

	_, err = serve(ctx, logger, cfg, readers)
	return err
}

// snapshotName keeps the snapshot inside its directory: anything that is not a single
// path element falls back to defaultSnapshotName.
func snapshotName(service string) string {
	name := strings.TrimSpace(service)
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return defaultSnapshotName
	}
	return name
}

// serve starts readers goroutines, or one per configured worker when readers is not
// positive, and returns how many ran. Each goroutine is started after Load returned,
// which orders the write before every read.
func serve(ctx context.Context, logger zerolog.Logger, cfg staticcell.Inited[Config, Config], readers int) (int, error) {
	workers := readers
	if workers < 1 {
		workers = cfg.Get().Workers
	}
	if workers < 1 {
		workers = 1
	}

	addrs := make([]*Config, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := cfg.Get()
			upstream := ""
			if len(c.Upstreams) > 0 {
				upstream = c.Upstreams[i%len(c.Upstreams)]
			}
			addrs[i] = c
			logger.Debug().
				Int("worker", i).
				Str("upstream", upstream).
				Int("max_conns", c.Limits.MaxConns).
				Msg("worker ready")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for i, a := range addrs {
		if a != addrs[0] {
			return 0, fmt.Errorf("worker %d read %p, worker 0 read %p", i, a, addrs[0])
		}
	}

	c := cfg.Get()
	logger.Info().
		Str("service", c.Service).
		Str("region", c.Region).
		Int("workers", workers).
		Str("addr", fmt.Sprintf("%p", addrs[0])).
		Msg("all workers share one config")
	return workers, nil
}
