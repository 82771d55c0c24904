package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := buildinfo.GetSummary()
			fmt.Printf("version:  %s\n", summary.GetBinaryVersion())
			fmt.Printf("commit:   %s\n", summary.GetGitCommit())
			fmt.Printf("branch:   %s\n", summary.GetGitBranch())
			fmt.Printf("state:    %s\n", summary.GetGitState())
			fmt.Printf("built:    %s\n", summary.GetBuildDate())
			return nil
		},
	}
}
