package notiontohtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermoap/notion-to-html/notion"
)

func metadataFixture() notion.Page {
	return notion.Page{
		ID:  "p1",
		URL: "https://notion.so/p1",
		Properties: map[string]notion.Property{
			"Name":        {Type: "title", Title: textRuns("Hello World")},
			"description": {Type: "rich_text", RichText: textRuns("a greeting")},
			"tags":        {Type: "multi_select", MultiSelect: []notion.SelectValue{{Name: "go"}, {Name: "dev"}}},
			"published":   {Type: "date", Date: &notion.DateValue{Start: "2023-07-13"}},
			"slug":        {Type: "rich_text", RichText: textRuns("hello-world")},
		},
	}
}

func TestNewPageMetadata(t *testing.T) {
	md := NewPageMetadata(metadataFixture())

	assert.Equal(t, "p1", md.ID())
	assert.Equal(t, "https://notion.so/p1", md.URL())
	assert.Equal(t, textRuns("Hello World"), md.Title)
	assert.Equal(t, textRuns("a greeting"), md.Description)
	assert.Equal(t, []string{"go", "dev"}, md.Tags)
	assert.Equal(t, "2023-07-13", md.PublishedAt)
	assert.Equal(t, "hello-world", md.Slug)
}

func TestNewPageMetadataSlugFallback(t *testing.T) {
	raw := metadataFixture()
	delete(raw.Properties, "slug")

	md := NewPageMetadata(raw)
	assert.Equal(t, "hello-world", md.Slug)
}

func TestNewPageMetadataMissingProperties(t *testing.T) {
	md := NewPageMetadata(notion.Page{ID: "p2", Properties: map[string]notion.Property{}})

	assert.Empty(t, md.Title)
	assert.Empty(t, md.Description)
	assert.Empty(t, md.Tags)
	assert.Empty(t, md.PublishedAt)
	assert.Empty(t, md.Slug)
}

func TestFormattedTitle(t *testing.T) {
	md := NewPageMetadata(metadataFixture())
	got := md.FormattedTitle(BlockOptions{Class: "title"})
	assert.Equal(t, `<span class="title">Hello World</span>`, got)
}

func TestFormattedPublishedAt(t *testing.T) {
	md := NewPageMetadata(metadataFixture())
	got := md.FormattedPublishedAt(BlockOptions{})
	assert.Contains(t, got, "July 13, 2023")
}

func TestFormattedBlocks(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		page := NewPage(NewPageMetadata(metadataFixture()), nil)
		assert.Empty(t, page.FormattedBlocks(nil))
	})

	t.Run("preserves block order", func(t *testing.T) {
		page := NewPage(NewPageMetadata(metadataFixture()), []*Block{
			textBlock(notion.TypeParagraph, "one"),
			textBlock(notion.TypeHeading1, "two"),
		})
		got := page.FormattedBlocks(nil)
		require.Len(t, got, 2)
		assert.Contains(t, got[0], "one")
		assert.Contains(t, got[1], "two")
	})
}
