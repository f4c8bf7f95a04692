package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	notiontohtml "github.com/guillermoap/notion-to-html"
	"github.com/guillermoap/notion-to-html/internal/config"
)

type pagesOptions struct {
	name        string
	description string
	tag         string
	slug        string
	pageSize    int
}

var pagesOpts = &pagesOptions{}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List published pages from the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPages(cmd.Context(), pagesOpts)
	},
}

func init() {
	pagesCmd.Flags().StringVar(&pagesOpts.name, "name", "", "Filter by title substring")
	pagesCmd.Flags().StringVar(&pagesOpts.description, "description", "", "Filter by description substring")
	pagesCmd.Flags().StringVar(&pagesOpts.tag, "tag", "", "Filter by tag")
	pagesCmd.Flags().StringVar(&pagesOpts.slug, "slug", "", "Filter by exact slug")
	pagesCmd.Flags().IntVarP(&pagesOpts.pageSize, "page-size", "n", 10, "Number of results to retrieve (max 100)")

	rootCmd.AddCommand(pagesCmd)
}

func runPages(ctx context.Context, opts *pagesOptions) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}

	pages, err := svc.GetPages(ctx, notiontohtml.PagesQuery{
		Name:        opts.name,
		Description: opts.description,
		Tag:         opts.tag,
		Slug:        opts.slug,
		PageSize:    opts.pageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSLUG\tPUBLISHED\tTAGS")
	for _, p := range pages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID(), pageTitle(p), p.Slug, p.PublishedAt, strings.Join(p.Tags, ","))
	}
	return w.Flush()
}

func pageTitle(p notiontohtml.PageMetadata) string {
	var sb strings.Builder
	for _, run := range p.Title {
		sb.WriteString(run.PlainText)
	}
	title := sb.String()
	if title == "" {
		title = "(Untitled)"
	}
	return title
}

// newService builds the rendering service from the CLI configuration.
func newService() (*notiontohtml.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	svc, err := notiontohtml.New(notiontohtml.Config{
		Token:      cfg.Token,
		DatabaseID: cfg.DatabaseID,
		CacheTTL:   cfg.CacheTTL,
		Logger:     newLogger(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, cfg, nil
}
