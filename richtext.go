package notiontohtml

import (
	"html"
	"strings"

	"github.com/guillermoap/notion-to-html/notion"
)

// Annotation classes, in the order they are emitted.
const (
	classBold          = "font-bold"
	classItalic        = "italic"
	classStrikethrough = "line-through"
	classUnderline     = "underline"
	classInlineCode    = "inline-code"
)

// annotationToClass maps a run's annotations to a space-joined class
// string. Only active styles contribute; color contributes only when
// it differs from "default". Output order is stable.
func annotationToClass(a *notion.Annotations) string {
	if a == nil {
		return ""
	}
	var classes []string
	if a.Bold {
		classes = append(classes, classBold)
	}
	if a.Italic {
		classes = append(classes, classItalic)
	}
	if a.Strikethrough {
		classes = append(classes, classStrikethrough)
	}
	if a.Underline {
		classes = append(classes, classUnderline)
	}
	if a.Code {
		classes = append(classes, classInlineCode)
	}
	if a.Color != "" && a.Color != "default" {
		classes = append(classes, "text-"+strings.ReplaceAll(a.Color, "_", "-"))
	}
	return strings.Join(classes, " ")
}

// RenderRichText converts an ordered sequence of text runs into inline
// markup, one element per run. Runs with an href become anchors; all
// runs carry the annotation-derived classes plus the caller class.
func RenderRichText(runs []notion.RichText, opts BlockOptions) string {
	var sb strings.Builder
	for _, run := range runs {
		class := joinClasses(annotationToClass(run.Annotations), opts.Class)
		text := html.EscapeString(run.PlainText)

		if run.Href != nil && *run.Href != "" {
			sb.WriteString(`<a href="`)
			sb.WriteString(html.EscapeString(*run.Href))
			sb.WriteString(`" class="`)
			sb.WriteString(class)
			sb.WriteString(`">`)
			sb.WriteString(text)
			sb.WriteString(`</a>`)
			continue
		}

		sb.WriteString(`<span class="`)
		sb.WriteString(class)
		sb.WriteString(`">`)
		sb.WriteString(text)
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

// joinClasses joins non-empty class fragments with single spaces.
func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
