package notiontohtml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermoap/notion-to-html/notion"
)

func TestNewRequiresToken(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	svc, err := New(Config{Token: "secret", DatabaseID: "db"})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestBuildQueryDefaults(t *testing.T) {
	q := buildQuery(PagesQuery{})

	require.NotNil(t, q.Filter)
	require.Len(t, q.Filter.And, 1)
	cond := q.Filter.And[0]
	assert.Equal(t, "public", cond.Property)
	require.NotNil(t, cond.Checkbox)
	require.NotNil(t, cond.Checkbox.Equals)
	assert.True(t, *cond.Checkbox.Equals)

	require.Len(t, q.Sorts, 1)
	assert.Equal(t, notion.Sort{Property: "published", Direction: "descending"}, q.Sorts[0])
	assert.Equal(t, 10, q.PageSize)
}

func TestBuildQueryOptionalConditions(t *testing.T) {
	q := buildQuery(PagesQuery{
		Name:        "go",
		Description: "posts",
		Tag:         "dev",
		Slug:        "hello-world",
		PageSize:    25,
	})

	require.Len(t, q.Filter.And, 5)
	assert.Equal(t, "title", q.Filter.And[1].Property)
	assert.Equal(t, "go", q.Filter.And[1].Title.Contains)
	assert.Equal(t, "description", q.Filter.And[2].Property)
	assert.Equal(t, "posts", q.Filter.And[2].RichText.Contains)
	assert.Equal(t, "tags", q.Filter.And[3].Property)
	assert.Equal(t, "dev", q.Filter.And[3].MultiSelect.Contains)
	assert.Equal(t, "slug", q.Filter.And[4].Property)
	assert.Equal(t, "hello-world", q.Filter.And[4].RichText.Equals)
	assert.Equal(t, 25, q.PageSize)
}

func TestBuildQueryClampsPageSize(t *testing.T) {
	assert.Equal(t, 10, buildQuery(PagesQuery{PageSize: -1}).PageSize)
	assert.Equal(t, 100, buildQuery(PagesQuery{PageSize: 500}).PageSize)
}

func TestGetPages(t *testing.T) {
	f := newFakeFetcher()
	f.queryPages = &notion.PageList{Results: []notion.Page{
		{ID: "p1", Properties: map[string]notion.Property{
			"Name": {Type: "title", Title: textRuns("First")},
		}},
		{ID: "p2", Properties: map[string]notion.Property{
			"Name": {Type: "title", Title: textRuns("Second")},
		}},
	}}

	pages, err := newTestService(f).GetPages(context.Background(), PagesQuery{Tag: "dev"})
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "p1", pages[0].ID())
	assert.Equal(t, "first", pages[0].Slug)
	require.Len(t, f.queried, 1)
	assert.Len(t, f.queried[0].Filter.And, 2)
}

func TestGetPageAssemblesTree(t *testing.T) {
	f := newFakeFetcher()
	f.pages["p1"] = &notion.Page{ID: "p1", Properties: map[string]notion.Property{
		"Name": {Type: "title", Title: textRuns("Post")},
	}}
	f.children["p1"] = &notion.BlockList{Results: []notion.Block{
		listItem("A", "p1", notion.TypeParagraph),
	}}

	page, err := newTestService(f).GetPage(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", page.Metadata.ID())
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, "A", page.Blocks[0].ID())
}

func TestGetPageUsesCache(t *testing.T) {
	f := newFakeFetcher()
	f.pages["p1"] = &notion.Page{ID: "p1", Properties: map[string]notion.Property{}}
	f.children["p1"] = &notion.BlockList{Results: []notion.Block{}}

	svc := newTestService(f)
	ctx := context.Background()

	_, err := svc.GetPage(ctx, "p1")
	require.NoError(t, err)
	_, err = svc.GetPage(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.pageCalls["p1"])
	assert.Equal(t, 1, f.childCalls["p1"])
}

func TestGetPageFetchFailurePropagates(t *testing.T) {
	svc := newTestService(newFakeFetcher())
	_, err := svc.GetPage(context.Background(), "missing")
	require.Error(t, err)
}

func TestServiceTreesAreIndependent(t *testing.T) {
	f := newFakeFetcher()
	f.children["root"] = &notion.BlockList{Results: []notion.Block{
		listItem("A", "P", notion.TypeNumberedListItem),
		listItem("B", "P", notion.TypeNumberedListItem),
	}}

	svc := newTestService(f)
	first, err := svc.GetBlocks(context.Background(), "root")
	require.NoError(t, err)
	second, err := svc.GetBlocks(context.Background(), "root")
	require.NoError(t, err)

	// The cache returns the same raw list, but each assembly builds
	// fresh Block instances: no sharing across calls.
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotSame(t, first[0], second[0])
	require.Len(t, first[0].Siblings, 1)
	require.Len(t, second[0].Siblings, 1)
}
