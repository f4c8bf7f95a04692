// Package notiontohtml converts Notion block trees into HTML markup
// with per-block default styling that callers can extend or override.
package notiontohtml

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/guillermoap/notion-to-html/internal/cache"
	"github.com/guillermoap/notion-to-html/notion"
)

// Default query parameters for GetPages.
const (
	defaultPageSize = 10
	maxPageSize     = 100

	sortProperty  = "published"
	sortDirection = "descending"

	// publicProperty is the checkbox that gates which pages the
	// service exposes.
	publicProperty = "public"
)

// Config holds everything the service needs. It is passed explicitly
// at construction; there is no process-wide configuration state.
type Config struct {
	// Token authenticates against the Notion API.
	Token string
	// DatabaseID is the database GetPages queries.
	DatabaseID string
	// BaseURL overrides the API base URL. Empty means the public API.
	BaseURL string
	// CacheTTL bounds how long page and block-list fetches are reused.
	// Zero means cached values never expire.
	CacheTTL time.Duration
	// HTTPClient overrides the HTTP client used for API calls.
	HTTPClient *http.Client
	// Logger receives debug logs. The zero value disables logging.
	Logger zerolog.Logger
}

// fetcher is the collaborator surface the service consumes. Satisfied
// by *notion.Client.
type fetcher interface {
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	GetBlock(ctx context.Context, blockID string) (*notion.Block, error)
	GetBlockChildren(ctx context.Context, blockID string) (*notion.BlockList, error)
	QueryDatabase(ctx context.Context, databaseID string, query *notion.DatabaseQuery) (*notion.PageList, error)
}

// Service fetches pages from Notion, assembles their block trees and
// exposes the rendering surface. Each assembled tree belongs
// exclusively to the calling request.
type Service struct {
	client     fetcher
	cache      *cache.Store
	databaseID string
	log        zerolog.Logger
	now        func() time.Time
}

// New creates a Service from an explicit configuration.
func New(cfg Config) (*Service, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	clientOpts := []notion.Option{notion.WithLogger(cfg.Logger)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, notion.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		clientOpts = append(clientOpts, notion.WithHTTPClient(cfg.HTTPClient))
	}

	return &Service{
		client:     notion.NewClient(cfg.Token, clientOpts...),
		cache:      cache.New(cfg.CacheTTL),
		databaseID: cfg.DatabaseID,
		log:        cfg.Logger,
		now:        time.Now,
	}, nil
}

// PagesQuery narrows the page listing. Zero-value fields add no
// conditions; every set field appends one condition to the implicit
// AND filter.
type PagesQuery struct {
	Name        string
	Description string
	Tag         string
	Slug        string
	PageSize    int
}

// GetPages lists published pages from the configured database, newest
// first.
func (s *Service) GetPages(ctx context.Context, q PagesQuery) ([]PageMetadata, error) {
	list, err := s.client.QueryDatabase(ctx, s.databaseID, buildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("failed to query database: %w", err)
	}

	pages := make([]PageMetadata, 0, len(list.Results))
	for _, raw := range list.Results {
		pages = append(pages, NewPageMetadata(raw))
	}
	return pages, nil
}

// GetPage fetches one page and assembles its full block tree.
func (s *Service) GetPage(ctx context.Context, pageID string) (*Page, error) {
	raw, err := s.fetchPage(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	blocks, err := s.GetBlocks(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return NewPage(NewPageMetadata(*raw), blocks), nil
}

// GetBlocks assembles the block tree rooted at the given page or block.
func (s *Service) GetBlocks(ctx context.Context, blockID string) ([]*Block, error) {
	return s.assemble(ctx, blockID, 0)
}

// buildQuery translates a PagesQuery into the wire filter tree. The
// public checkbox condition is always present; optional conditions are
// appended in a fixed order.
func buildQuery(q PagesQuery) *notion.DatabaseQuery {
	published := true
	conditions := []notion.PropertyFilter{
		{Property: publicProperty, Checkbox: &notion.CheckboxFilter{Equals: &published}},
	}
	if q.Name != "" {
		conditions = append(conditions, notion.PropertyFilter{
			Property: "title", Title: &notion.TextFilter{Contains: q.Name},
		})
	}
	if q.Description != "" {
		conditions = append(conditions, notion.PropertyFilter{
			Property: propDescription, RichText: &notion.TextFilter{Contains: q.Description},
		})
	}
	if q.Tag != "" {
		conditions = append(conditions, notion.PropertyFilter{
			Property: propTags, MultiSelect: &notion.MultiSelectFilter{Contains: q.Tag},
		})
	}
	if q.Slug != "" {
		conditions = append(conditions, notion.PropertyFilter{
			Property: propSlug, RichText: &notion.TextFilter{Equals: q.Slug},
		})
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return &notion.DatabaseQuery{
		Filter:   &notion.Filter{And: conditions},
		Sorts:    []notion.Sort{{Property: sortProperty, Direction: sortDirection}},
		PageSize: pageSize,
	}
}

// fetchPage reads a page through the cache.
func (s *Service) fetchPage(ctx context.Context, pageID string) (*notion.Page, error) {
	return cache.Fetch(s.cache, "page:"+pageID, func() (*notion.Page, error) {
		return s.client.GetPage(ctx, pageID)
	})
}

// fetchBlockChildren reads a flat child list through the cache.
func (s *Service) fetchBlockChildren(ctx context.Context, blockID string) (*notion.BlockList, error) {
	return cache.Fetch(s.cache, "blocks:"+blockID, func() (*notion.BlockList, error) {
		return s.client.GetBlockChildren(ctx, blockID)
	})
}
