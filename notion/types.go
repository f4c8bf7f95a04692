package notion

import (
	"time"
)

// Block type names as they appear on the wire.
const (
	TypeParagraph        = "paragraph"
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeQuote            = "quote"
	TypeCallout          = "callout"
	TypeCode             = "code"
	TypeImage            = "image"
	TypeEmbed            = "embed"
	TypeVideo            = "video"
	TypeTableOfContents  = "table_of_contents"
)

// Block represents one block object returned by the Notion API.
type Block struct {
	Object         string    `json:"object"`
	ID             string    `json:"id"`
	CreatedTime    time.Time `json:"created_time"`
	LastEditedTime time.Time `json:"last_edited_time"`
	CreatedBy      User      `json:"created_by"`
	LastEditedBy   User      `json:"last_edited_by"`
	Parent         Parent    `json:"parent"`
	Archived       bool      `json:"archived"`
	HasChildren    bool      `json:"has_children"`
	Type           string    `json:"type"`

	Paragraph        *RichTextValue   `json:"paragraph,omitempty"`
	Heading1         *RichTextValue   `json:"heading_1,omitempty"`
	Heading2         *RichTextValue   `json:"heading_2,omitempty"`
	Heading3         *RichTextValue   `json:"heading_3,omitempty"`
	BulletedListItem *RichTextValue   `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextValue   `json:"numbered_list_item,omitempty"`
	Quote            *RichTextValue   `json:"quote,omitempty"`
	Callout          *CalloutValue    `json:"callout,omitempty"`
	Code             *CodeValue       `json:"code,omitempty"`
	Image            *MediaValue      `json:"image,omitempty"`
	Embed            *MediaValue      `json:"embed,omitempty"`
	Video            *MediaValue      `json:"video,omitempty"`
	TableOfContents  *TableOfContents `json:"table_of_contents,omitempty"`
}

// RichTextValue is the payload of text-bearing block types.
type RichTextValue struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

// CalloutValue is the payload of a callout block.
type CalloutValue struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// CodeValue is the payload of a code block.
type CodeValue struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language,omitempty"`
}

// MediaValue is the payload of image, video and embed blocks. Hosted
// files carry a time-limited URL in File; external media carry only a
// URL. Embeds use the bare URL field.
type MediaValue struct {
	Type     string     `json:"type,omitempty"`
	File     *FileData  `json:"file,omitempty"`
	External *External  `json:"external,omitempty"`
	URL      string     `json:"url,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
}

// TableOfContents is the payload of a table_of_contents block.
type TableOfContents struct {
	Color string `json:"color,omitempty"`
}

// BlockList represents one page of results from the block children endpoint.
type BlockList struct {
	Object     string  `json:"object"`
	Results    []Block `json:"results"`
	NextCursor string  `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// Page represents a Notion page object.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	CreatedBy      User                `json:"created_by"`
	LastEditedBy   User                `json:"last_edited_by"`
	Cover          *File               `json:"cover"`
	Icon           *Icon               `json:"icon"`
	Parent         Parent              `json:"parent"`
	Archived       bool                `json:"archived"`
	Properties     map[string]Property `json:"properties"`
	URL            string              `json:"url"`
}

// PageList represents one page of results from a database query.
type PageList struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// User represents a Notion user reference. Only the reference is kept;
// user records are never resolved.
type User struct {
	Object string `json:"object"`
	ID     string `json:"id"`
}

// File represents a file object.
type File struct {
	Type     string    `json:"type"`
	External *External `json:"external,omitempty"`
	File     *FileData `json:"file,omitempty"`
}

// External represents an externally hosted file.
type External struct {
	URL string `json:"url"`
}

// FileData represents a Notion-hosted file with a time-limited URL.
type FileData struct {
	URL        string    `json:"url"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// Icon represents an icon (emoji or file).
type Icon struct {
	Type     string    `json:"type"`
	Emoji    string    `json:"emoji,omitempty"`
	External *External `json:"external,omitempty"`
	File     *FileData `json:"file,omitempty"`
}

// Parent represents the parent of a page or block.
type Parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// Property represents a page property value.
type Property struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	Number      *float64      `json:"number,omitempty"`
	Select      *SelectValue  `json:"select,omitempty"`
	MultiSelect []SelectValue `json:"multi_select,omitempty"`
	Date        *DateValue    `json:"date,omitempty"`
	Checkbox    *bool         `json:"checkbox,omitempty"`
	URL         *string       `json:"url,omitempty"`
}

// RichText represents one styled text run.
type RichText struct {
	Type        string       `json:"type"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href,omitempty"`
}

// TextContent represents the text sub-object of a rich text run.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link represents a link.
type Link struct {
	URL string `json:"url"`
}

// Annotations represents text styling annotations.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// SelectValue represents a select or multi-select option.
type SelectValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue represents a date property value.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// APIError represents an error response from the Notion API.
type APIError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// DatabaseQuery represents the body of a database query request.
type DatabaseQuery struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter represents a compound filter. Conditions are AND-ed in order.
type Filter struct {
	And []PropertyFilter `json:"and,omitempty"`
}

// PropertyFilter represents a single property condition.
type PropertyFilter struct {
	Property    string             `json:"property"`
	Checkbox    *CheckboxFilter    `json:"checkbox,omitempty"`
	Title       *TextFilter        `json:"title,omitempty"`
	RichText    *TextFilter        `json:"rich_text,omitempty"`
	MultiSelect *MultiSelectFilter `json:"multi_select,omitempty"`
}

// CheckboxFilter represents a checkbox condition.
type CheckboxFilter struct {
	Equals *bool `json:"equals,omitempty"`
}

// TextFilter represents a text condition.
type TextFilter struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

// MultiSelectFilter represents a multi-select condition.
type MultiSelectFilter struct {
	Contains string `json:"contains,omitempty"`
}

// Sort represents a sort instruction for a database query.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}
