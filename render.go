package notiontohtml

import (
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/guillermoap/notion-to-html/notion"
)

// Default classes per block type. Callers extend them via
// BlockOptions.Class or replace them with OverrideClass.
const (
	defaultParagraphClass = "py-1"
	defaultHeading1Class  = "mb-4 mt-6 text-3xl font-semibold"
	defaultHeading2Class  = "mb-4 mt-6 text-2xl font-semibold"
	defaultHeading3Class  = "mb-2 mt-4 text-xl font-semibold"
	defaultBulletedClass  = "list-disc"
	defaultNumberedClass  = "list-decimal"
	defaultQuoteClass     = "border-l-4 border-neutral-900 px-5 py-1"
	defaultCalloutClass   = "flex items-center gap-2 rounded bg-neutral-100 p-3 my-2"
	defaultCodeClass      = "rounded bg-neutral-100 p-4 overflow-x-auto"
	defaultImageClass     = "py-2"
	defaultVideoClass     = "py-2"
	defaultEmbedClass     = "py-2"
	defaultTOCClass       = "py-2"
	defaultDateClass      = "text-sm text-neutral-500"

	// aspectRatioClass is added to externally hosted video frames.
	aspectRatioClass = "aspect-video"
)

// unsupportedPlaceholder is emitted for block types the engine does not
// render.
const unsupportedPlaceholder = `<p class="text-neutral-400">Unsupported block</p>`

// publishedAtLayout is the long-form layout used for date rendering,
// e.g. "July 13, 2023".
const publishedAtLayout = "January 2, 2006"

func renderParagraph(runs []notion.RichText, opts BlockOptions) string {
	return taggedBlock("p", opts.classes(defaultParagraphClass), opts, RenderRichText(runs, BlockOptions{}))
}

func renderHeading1(runs []notion.RichText, opts BlockOptions) string {
	return taggedBlock("h1", opts.classes(defaultHeading1Class), opts, RenderRichText(runs, BlockOptions{}))
}

func renderHeading2(runs []notion.RichText, opts BlockOptions) string {
	return taggedBlock("h2", opts.classes(defaultHeading2Class), opts, RenderRichText(runs, BlockOptions{}))
}

func renderHeading3(runs []notion.RichText, opts BlockOptions) string {
	return taggedBlock("h3", opts.classes(defaultHeading3Class), opts, RenderRichText(runs, BlockOptions{}))
}

func renderQuote(runs []notion.RichText, opts BlockOptions) string {
	return taggedBlock("blockquote", opts.classes(defaultQuoteClass), opts, RenderRichText(runs, BlockOptions{}))
}

func renderCallout(runs []notion.RichText, icon string, opts BlockOptions) string {
	var sb strings.Builder
	if icon != "" {
		sb.WriteString(`<span>`)
		sb.WriteString(html.EscapeString(icon))
		sb.WriteString(`</span>`)
	}
	sb.WriteString(RenderRichText(runs, BlockOptions{}))
	return taggedBlock("div", opts.classes(defaultCalloutClass), opts, sb.String())
}

// renderCode wraps the content in a language-tagged code block. The
// options language wins over the language carried by the block.
func renderCode(runs []notion.RichText, language string, opts BlockOptions) string {
	if opts.Language != "" {
		language = opts.Language
	}

	var sb strings.Builder
	sb.WriteString(`<pre><code class="`)
	sb.WriteString(joinClasses("language-" + language))
	sb.WriteString(`">`)
	for _, run := range runs {
		sb.WriteString(html.EscapeString(run.PlainText))
	}
	sb.WriteString(`</code></pre>`)
	return taggedBlock("div", opts.classes(defaultCodeClass), opts, sb.String())
}

// renderBulletedListItem renders a bulleted item, its children one
// level deeper, and its siblings at the same depth.
func renderBulletedListItem(b *Block, opts BlockOptions, depth int) string {
	return renderListItem(b, defaultBulletedClass, opts, depth, renderBulletedListItem)
}

// renderNumberedListItem renders a numbered item, its children one
// level deeper, and its siblings at the same depth.
func renderNumberedListItem(b *Block, opts BlockOptions, depth int) string {
	return renderListItem(b, defaultNumberedClass, opts, depth, renderNumberedListItem)
}

func renderListItem(b *Block, defaultClass string, opts BlockOptions, depth int, recurse func(*Block, BlockOptions, int) string) string {
	var sb strings.Builder
	sb.WriteString(taggedBlock("li", opts.classes(defaultClass, indentClass(depth)), opts, RenderRichText(b.RichText(), BlockOptions{})))
	for _, child := range b.Children {
		sb.WriteString(recurse(child, opts, depth+1))
	}
	for _, sibling := range b.Siblings {
		sb.WriteString(recurse(sibling, opts, depth))
	}
	return sb.String()
}

// indentClass returns the indentation modifier for a nesting depth.
// Depth zero has no modifier.
func indentClass(depth int) string {
	if depth <= 0 {
		return ""
	}
	return "ml-" + strconv.Itoa(depth*4)
}

func renderImage(b *Block, opts BlockOptions) string {
	url, _, caption, _ := b.MultiMedia()

	var sb strings.Builder
	sb.WriteString(`<img src="`)
	sb.WriteString(html.EscapeString(url))
	sb.WriteString(`">`)
	sb.WriteString(renderCaption(caption))
	return taggedBlock("figure", opts.classes(defaultImageClass), opts, sb.String())
}

// renderVideo emits native player markup for hosted files and an
// embedded frame for external sources. External frames get a fixed
// aspect-ratio class on top of the resolved class.
func renderVideo(b *Block, opts BlockOptions) string {
	url, _, caption, kind := b.MultiMedia()

	var sb strings.Builder
	class := opts.classes(defaultVideoClass)
	if kind == MediaSourceFile {
		sb.WriteString(`<video controls><source src="`)
		sb.WriteString(html.EscapeString(url))
		sb.WriteString(`"></video>`)
	} else {
		class = joinClasses(class, aspectRatioClass)
		sb.WriteString(`<iframe src="`)
		sb.WriteString(html.EscapeString(url))
		sb.WriteString(`" allowfullscreen></iframe>`)
	}
	sb.WriteString(renderCaption(caption))
	return taggedBlock("figure", class, opts, sb.String())
}

func renderEmbed(b *Block, opts BlockOptions) string {
	url, _, caption, _ := b.MultiMedia()

	var sb strings.Builder
	sb.WriteString(`<iframe src="`)
	sb.WriteString(html.EscapeString(url))
	sb.WriteString(`"></iframe>`)
	sb.WriteString(renderCaption(caption))
	return taggedBlock("figure", opts.classes(defaultEmbedClass), opts, sb.String())
}

func renderTableOfContents(opts BlockOptions) string {
	return taggedBlock("nav", opts.classes(defaultTOCClass), opts, "")
}

func renderUnsupported() string {
	return unsupportedPlaceholder
}

// renderDate formats a date string ("2006-01-02") to its long form
// inside a paragraph. Unparseable input is emitted verbatim.
func renderDate(date string, opts BlockOptions) string {
	formatted := date
	if t, err := time.Parse("2006-01-02", date); err == nil {
		formatted = t.Format(publishedAtLayout)
	}
	return taggedBlock("p", opts.classes(defaultDateClass), opts, html.EscapeString(formatted))
}

// renderCaption renders a media caption, empty when there are no runs.
func renderCaption(runs []notion.RichText) string {
	if len(runs) == 0 {
		return ""
	}
	return `<figcaption>` + RenderRichText(runs, BlockOptions{}) + `</figcaption>`
}

// taggedBlock emits one block element with its resolved class, data
// attributes and inner markup.
func taggedBlock(tag, class string, opts BlockOptions, inner string) string {
	var sb strings.Builder
	sb.WriteString(`<`)
	sb.WriteString(tag)
	sb.WriteString(` class="`)
	sb.WriteString(class)
	sb.WriteString(`"`)
	sb.WriteString(opts.dataAttrs())
	sb.WriteString(`>`)
	sb.WriteString(inner)
	sb.WriteString(`</`)
	sb.WriteString(tag)
	sb.WriteString(`>`)
	return sb.String()
}
