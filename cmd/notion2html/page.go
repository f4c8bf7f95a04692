package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	notiontohtml "github.com/guillermoap/notion-to-html"
)

var pageCmd = &cobra.Command{
	Use:   "page <page_id>",
	Short: "Render one page as an HTML fragment",
	Long:  `Fetch a Notion page by ID, assemble its block tree and print the rendered HTML to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

func runPage(ctx context.Context, pageID string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	page, err := svc.GetPage(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	fmt.Printf("<h1>%s</h1>\n", page.Metadata.FormattedTitle(notiontohtml.BlockOptions{}))
	if page.Metadata.PublishedAt != "" {
		fmt.Println(page.Metadata.FormattedPublishedAt(notiontohtml.BlockOptions{}))
	}
	fmt.Println(strings.Join(page.FormattedBlocks(nil), "\n"))
	return nil
}
