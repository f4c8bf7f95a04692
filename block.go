package notiontohtml

import (
	"time"

	"github.com/guillermoap/notion-to-html/notion"
)

// Block is the in-memory representation of one content block. Children
// and Siblings start empty and are populated only during tree
// assembly; a Block belongs to exactly one tree position and is never
// shared across parents.
type Block struct {
	Raw notion.Block

	Children []*Block
	Siblings []*Block
}

// NewBlock wraps a raw API block. Children and Siblings are left empty.
func NewBlock(raw notion.Block) *Block {
	return &Block{Raw: raw}
}

// ID returns the block's identity.
func (b *Block) ID() string {
	return b.Raw.ID
}

// Type returns the block's type name.
func (b *Block) Type() string {
	return b.Raw.Type
}

// HasChildren reports whether the source block has children.
func (b *Block) HasChildren() bool {
	return b.Raw.HasChildren
}

// Parent returns the block's parent reference.
func (b *Block) Parent() notion.Parent {
	return b.Raw.Parent
}

// RichText returns the type payload's text runs, or nil when the
// payload carries none.
func (b *Block) RichText() []notion.RichText {
	switch b.Raw.Type {
	case notion.TypeParagraph:
		if b.Raw.Paragraph != nil {
			return b.Raw.Paragraph.RichText
		}
	case notion.TypeHeading1:
		if b.Raw.Heading1 != nil {
			return b.Raw.Heading1.RichText
		}
	case notion.TypeHeading2:
		if b.Raw.Heading2 != nil {
			return b.Raw.Heading2.RichText
		}
	case notion.TypeHeading3:
		if b.Raw.Heading3 != nil {
			return b.Raw.Heading3.RichText
		}
	case notion.TypeBulletedListItem:
		if b.Raw.BulletedListItem != nil {
			return b.Raw.BulletedListItem.RichText
		}
	case notion.TypeNumberedListItem:
		if b.Raw.NumberedListItem != nil {
			return b.Raw.NumberedListItem.RichText
		}
	case notion.TypeQuote:
		if b.Raw.Quote != nil {
			return b.Raw.Quote.RichText
		}
	case notion.TypeCallout:
		if b.Raw.Callout != nil {
			return b.Raw.Callout.RichText
		}
	case notion.TypeCode:
		if b.Raw.Code != nil {
			return b.Raw.Code.RichText
		}
	}
	return nil
}

// Icon returns the callout icon's value for its declared sub-type: the
// emoji character, or the external/hosted file URL. Absent icons yield
// an empty string.
func (b *Block) Icon() string {
	if b.Raw.Callout == nil || b.Raw.Callout.Icon == nil {
		return ""
	}
	icon := b.Raw.Callout.Icon
	switch icon.Type {
	case "emoji":
		return icon.Emoji
	case "external":
		if icon.External != nil {
			return icon.External.URL
		}
	case "file":
		if icon.File != nil {
			return icon.File.URL
		}
	}
	return ""
}

// Media source kinds reported by MultiMedia.
const (
	MediaSourceFile     = "file"
	MediaSourceExternal = "external"
)

// MultiMedia resolves the block's media descriptor. A hosted file wins
// over an external URL, which wins over a bare url field. The expiry
// is non-nil only for hosted files; kind is empty for bare URLs and
// for blocks without media.
func (b *Block) MultiMedia() (url string, expiry *time.Time, caption []notion.RichText, kind string) {
	media := b.mediaValue()
	if media == nil {
		return "", nil, nil, ""
	}
	caption = media.Caption

	if media.File != nil {
		t := media.File.ExpiryTime
		return media.File.URL, &t, caption, MediaSourceFile
	}
	if media.External != nil {
		return media.External.URL, nil, caption, MediaSourceExternal
	}
	return media.URL, nil, caption, ""
}

func (b *Block) mediaValue() *notion.MediaValue {
	switch b.Raw.Type {
	case notion.TypeImage:
		return b.Raw.Image
	case notion.TypeVideo:
		return b.Raw.Video
	case notion.TypeEmbed:
		return b.Raw.Embed
	}
	return nil
}

// Render converts the block to markup. Unknown types render to a fixed
// placeholder rather than failing. Rendering is a pure read: the same
// block and options always produce the same string.
func (b *Block) Render(opts RenderOptions) string {
	switch b.Raw.Type {
	case notion.TypeParagraph:
		return renderParagraph(b.RichText(), opts.For(notion.TypeParagraph))
	case notion.TypeHeading1:
		return renderHeading1(b.RichText(), opts.For(notion.TypeHeading1))
	case notion.TypeHeading2:
		return renderHeading2(b.RichText(), opts.For(notion.TypeHeading2))
	case notion.TypeHeading3:
		return renderHeading3(b.RichText(), opts.For(notion.TypeHeading3))
	case notion.TypeBulletedListItem:
		return renderBulletedListItem(b, opts.For(notion.TypeBulletedListItem), 0)
	case notion.TypeNumberedListItem:
		return renderNumberedListItem(b, opts.For(notion.TypeNumberedListItem), 0)
	case notion.TypeQuote:
		return renderQuote(b.RichText(), opts.For(notion.TypeQuote))
	case notion.TypeCallout:
		return renderCallout(b.RichText(), b.Icon(), opts.For(notion.TypeCallout))
	case notion.TypeCode:
		return renderCode(b.RichText(), b.codeLanguage(), opts.For(notion.TypeCode))
	case notion.TypeImage:
		return renderImage(b, opts.For(notion.TypeImage))
	case notion.TypeVideo:
		return renderVideo(b, opts.For(notion.TypeVideo))
	case notion.TypeEmbed:
		return renderEmbed(b, opts.For(notion.TypeEmbed))
	case notion.TypeTableOfContents:
		return renderTableOfContents(opts.For(notion.TypeTableOfContents))
	default:
		return renderUnsupported()
	}
}

// codeLanguage returns the language tag carried by a code block.
func (b *Block) codeLanguage() string {
	if b.Raw.Code == nil {
		return ""
	}
	return b.Raw.Code.Language
}
