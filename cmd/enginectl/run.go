package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blockflowhq/blockflow/buildinfo"
	"github.com/blockflowhq/blockflow/internal/controlplane"
	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/controller"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/logging"
	"github.com/blockflowhq/blockflow/pkg/metrics"
	"github.com/blockflowhq/blockflow/pkg/telemetry"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load a block list, serve the control plane, and watch for changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func run() error {
	cfg := setupConfig()
	logging.SetupLogger(buildinfo.Version, cfg.Log.Debug, cfg.Log.Human)

	if err := metrics.SetupInstrumentation(":"+cfg.Metrics.Port, "blockflow:enginectl"); err != nil {
		return fmt.Errorf("setting up instrumentation: %s", err)
	}

	telemetry.SetMetricStore(telemetry.NewInMemoryMetricStore())
	if err := telemetry.Collect(context.Background(), buildinfo.GetSummary()); err != nil {
		log.Error().Err(err).Msg("collecting git summary metric")
	}

	blockRegistry := blockconfig.Builtin()

	execCtx := execcontext.NewStaticContext()
	ctrl := controller.New(func(time uint64) execcontext.ExecutionContext {
		execCtx.SetTime(time)
		return execCtx
	})

	if err := loadActor(blockRegistry, ctrl, cfg.BlockList); err != nil {
		return fmt.Errorf("loading initial block list: %s", err)
	}

	router := controlplane.ConfiguredRouter(blockRegistry, ctrl)
	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTP.Port).Msg("control plane listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %s", err)
		}
		return nil
	})

	if cfg.Watch {
		g.Go(func() error {
			return watchBlockList(gctx, blockRegistry, ctrl, cfg.BlockList)
		})
	}

	<-gctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutting down http server")
	}

	return g.Wait()
}

// loadActor decodes path as a wire block list, weaves it, and registers it
// as actor 1 against ctrl. Subsequent hot-reweaves replace the same actor
// id so callers that already hold it keep pointing at the live strategy.
func loadActor(blockRegistry *blockconfig.Registry, ctrl *controller.Controller, path string) error {
	woven, err := weaveFile(blockRegistry, path)
	if err != nil {
		return err
	}

	const watchedActorID = 1
	ctrl.RemoveActorByID(watchedActorID)
	plan := execplan.New(woven)
	ctrl.AddActor(controller.NewHandle(actor.New(watchedActorID, plan)))
	return nil
}

// watchBlockList reweaves path and replaces the watched actor every time
// the file changes on disk, until ctx is cancelled.
func watchBlockList(
	ctx context.Context,
	blockRegistry *blockconfig.Registry,
	ctrl *controller.Controller,
	path string,
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %s", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %s", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := loadActor(blockRegistry, ctrl, path); err != nil {
				log.Error().Err(err).Str("path", path).Msg("hot-reweave failed, keeping previous actor")
				continue
			}
			log.Info().Str("path", path).Msg("hot-reweave succeeded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("file watcher error")
		}
	}
}
