package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <block_id>",
	Short: "Render the block subtree rooted at a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBlocks(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(ctx context.Context, blockID string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	blocks, err := svc.GetBlocks(ctx, blockID)
	if err != nil {
		return fmt.Errorf("failed to render blocks: %w", err)
	}

	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, b.Render(nil))
	}
	fmt.Println(strings.Join(rendered, "\n"))
	return nil
}
