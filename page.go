package notiontohtml

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/guillermoap/notion-to-html/notion"
)

// Property names the metadata derivation reads from the source
// database.
const (
	propTags        = "tags"
	propSlug        = "slug"
	propPublished   = "published"
	propDescription = "description"
)

// PageMetadata pairs a raw page object with the read-only fields
// derived from its properties at construction.
type PageMetadata struct {
	Raw notion.Page

	Title       []notion.RichText
	Description []notion.RichText
	Tags        []string
	Slug        string
	PublishedAt string
}

// NewPageMetadata derives the read-only fields from a raw page. A page
// without an explicit slug property gets one slugified from its title.
func NewPageMetadata(raw notion.Page) PageMetadata {
	md := PageMetadata{Raw: raw}

	for _, prop := range raw.Properties {
		if prop.Type == "title" {
			md.Title = prop.Title
			break
		}
	}

	if prop, ok := raw.Properties[propDescription]; ok {
		md.Description = prop.RichText
	}
	if prop, ok := raw.Properties[propTags]; ok {
		for _, s := range prop.MultiSelect {
			md.Tags = append(md.Tags, s.Name)
		}
	}
	if prop, ok := raw.Properties[propPublished]; ok && prop.Date != nil {
		md.PublishedAt = prop.Date.Start
	}
	if prop, ok := raw.Properties[propSlug]; ok {
		md.Slug = plainText(prop.RichText)
	}
	if md.Slug == "" {
		md.Slug = slug.Make(plainText(md.Title))
	}

	return md
}

// ID returns the page's identity.
func (m PageMetadata) ID() string {
	return m.Raw.ID
}

// URL returns the page's canonical Notion URL.
func (m PageMetadata) URL() string {
	return m.Raw.URL
}

// FormattedTitle renders the title runs as inline markup.
func (m PageMetadata) FormattedTitle(opts BlockOptions) string {
	return RenderRichText(m.Title, opts)
}

// FormattedDescription renders the description runs as inline markup.
func (m PageMetadata) FormattedDescription(opts BlockOptions) string {
	return RenderRichText(m.Description, opts)
}

// FormattedPublishedAt renders the published date in long form,
// e.g. "July 13, 2023".
func (m PageMetadata) FormattedPublishedAt(opts BlockOptions) string {
	return renderDate(m.PublishedAt, opts)
}

// Page is an immutable pairing of page metadata with its assembled
// root block list. It is constructed once per fetch and never mutated;
// rendering is a pure read.
type Page struct {
	Metadata PageMetadata
	Blocks   []*Block
}

// NewPage pairs metadata with an assembled root block list.
func NewPage(metadata PageMetadata, blocks []*Block) *Page {
	return &Page{Metadata: metadata, Blocks: blocks}
}

// FormattedBlocks renders every root block in order. Empty input
// yields empty output.
func (p *Page) FormattedBlocks(opts RenderOptions) []string {
	rendered := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		rendered = append(rendered, b.Render(opts))
	}
	return rendered
}

// plainText concatenates the plain text of a run sequence.
func plainText(runs []notion.RichText) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.PlainText)
	}
	return strings.TrimSpace(sb.String())
}
