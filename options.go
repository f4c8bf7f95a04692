package notiontohtml

import (
	"html"
	"sort"
	"strings"
)

// BlockOptions customizes rendering for one block type.
type BlockOptions struct {
	// Class is appended to the type's default class, or replaces it
	// entirely when OverrideClass is set.
	Class         string
	OverrideClass bool
	// Data is rendered as data-* attributes on the block element.
	Data map[string]string
	// Language overrides the code block language tag.
	Language string
}

// RenderOptions maps a block type name to its options. Options are
// passed per render call and never stored on a block.
type RenderOptions map[string]BlockOptions

// For returns the options for a block type, or zero options when none
// were supplied.
func (o RenderOptions) For(blockType string) BlockOptions {
	if o == nil {
		return BlockOptions{}
	}
	return o[blockType]
}

// classes resolves the final class string for an element. With
// OverrideClass the caller class replaces the defaults entirely;
// otherwise defaults and the caller class are joined and trimmed.
func (o BlockOptions) classes(defaults ...string) string {
	if o.OverrideClass {
		return o.Class
	}
	parts := make([]string, 0, len(defaults)+1)
	for _, d := range defaults {
		if d != "" {
			parts = append(parts, d)
		}
	}
	if o.Class != "" {
		parts = append(parts, o.Class)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// dataAttrs renders the Data map as data-* attributes, keys sorted for
// stable output.
func (o BlockOptions) dataAttrs() string {
	if len(o.Data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(o.Data))
	for k := range o.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(` data-`)
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(o.Data[k]))
		sb.WriteString(`"`)
	}
	return sb.String()
}
