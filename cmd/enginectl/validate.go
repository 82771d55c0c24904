package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/metrics"
	"github.com/blockflowhq/blockflow/pkg/telemetry"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

// weaveRejectedEvent satisfies telemetry.WeaveRejected for a block list
// rejected from the command line, whether at decode time or weave time.
type weaveRejectedEvent struct {
	reason    string
	nodeCount int
}

func (e weaveRejectedEvent) Reason() string { return e.reason }

func (e weaveRejectedEvent) NodeCount() int { return e.nodeCount }

func collectWeaveRejected(reason string, nodeCount int) {
	event := weaveRejectedEvent{reason: reason, nodeCount: nodeCount}
	if err := telemetry.Collect(context.Background(), event); err != nil {
		log.Error().Err(err).Msg("collecting weave rejected metric")
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [block-list-file]",
		Short: "Decode and weave a block list without serving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			woven, err := weaveFile(blockconfig.Builtin(), args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid block list: %s\n", err)
				os.Exit(1)
				return nil
			}
			fmt.Printf("ok: %d block(s) woven\n", len(woven))
			return nil
		},
	}
}

func weaveFile(blockRegistry *blockconfig.Registry, path string) ([]blocks.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading block list: %w", err)
	}

	nodes, err := blockRegistry.DecodePackages(data)
	if err != nil {
		metrics.IncWeaveErrors(context.Background())
		collectWeaveRejected(err.Error(), 0)
		return nil, fmt.Errorf("decoding block list: %w", err)
	}

	woven, err := weave.Weave(nodes, channels.NewRegistry())
	if err != nil {
		metrics.IncWeaveErrors(context.Background())
		collectWeaveRejected(err.Error(), len(nodes))
		return nil, fmt.Errorf("weaving block list: %w", err)
	}
	return woven, nil
}
