package notiontohtml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillermoap/notion-to-html/notion"
)

func TestAnnotationToClass(t *testing.T) {
	tests := []struct {
		name        string
		annotations *notion.Annotations
		want        string
	}{
		{
			name:        "nil annotations",
			annotations: nil,
			want:        "",
		},
		{
			name:        "all default",
			annotations: &notion.Annotations{Color: "default"},
			want:        "",
		},
		{
			name:        "bold only",
			annotations: &notion.Annotations{Bold: true, Color: "default"},
			want:        "font-bold",
		},
		{
			name:        "italic and underline",
			annotations: &notion.Annotations{Italic: true, Underline: true, Color: "default"},
			want:        "italic underline",
		},
		{
			name:        "code",
			annotations: &notion.Annotations{Code: true, Color: "default"},
			want:        "inline-code",
		},
		{
			name:        "color only",
			annotations: &notion.Annotations{Color: "red"},
			want:        "text-red",
		},
		{
			name:        "background color underscore",
			annotations: &notion.Annotations{Color: "blue_background"},
			want:        "text-blue-background",
		},
		{
			name: "everything active keeps stable order",
			annotations: &notion.Annotations{
				Bold: true, Italic: true, Strikethrough: true,
				Underline: true, Code: true, Color: "green",
			},
			want: "font-bold italic line-through underline inline-code text-green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, annotationToClass(tt.annotations))
		})
	}
}

func TestRenderRichText(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", RenderRichText(nil, BlockOptions{}))
	})

	t.Run("plain run renders span with caller class", func(t *testing.T) {
		runs := []notion.RichText{{PlainText: "hello"}}
		got := RenderRichText(runs, BlockOptions{Class: "prose"})
		assert.Equal(t, `<span class="prose">hello</span>`, got)
	})

	t.Run("annotated run combines classes", func(t *testing.T) {
		runs := []notion.RichText{{
			PlainText:   "hot",
			Annotations: &notion.Annotations{Bold: true, Color: "red"},
		}}
		got := RenderRichText(runs, BlockOptions{Class: "prose"})
		assert.Equal(t, `<span class="font-bold text-red prose">hot</span>`, got)
	})

	t.Run("href renders anchor", func(t *testing.T) {
		href := "https://example.com"
		runs := []notion.RichText{{
			PlainText:   "link",
			Annotations: &notion.Annotations{Underline: true},
			Href:        &href,
		}}
		got := RenderRichText(runs, BlockOptions{})
		assert.Equal(t, `<a href="https://example.com" class="underline">link</a>`, got)
	})

	t.Run("runs concatenate in order", func(t *testing.T) {
		runs := []notion.RichText{
			{PlainText: "a", Annotations: &notion.Annotations{Bold: true}},
			{PlainText: "b"},
		}
		got := RenderRichText(runs, BlockOptions{})
		assert.Equal(t, `<span class="font-bold">a</span><span class="">b</span>`, got)
	})

	t.Run("text is escaped", func(t *testing.T) {
		runs := []notion.RichText{{PlainText: "<script>"}}
		got := RenderRichText(runs, BlockOptions{})
		assert.Equal(t, `<span class="">&lt;script&gt;</span>`, got)
	})
}
