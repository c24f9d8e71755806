package document

// BlockKind discriminates the payload shape of a ContentBlock.
type BlockKind string

const (
	KindText         BlockKind = "text"
	KindList         BlockKind = "list"
	KindCode         BlockKind = "code"
	KindTable        BlockKind = "table"
	KindArchitecture BlockKind = "architecture"
	KindAPI          BlockKind = "api"
	KindFlow         BlockKind = "flow"
	KindImageTool    BlockKind = "image_tool"
)

// Kinds lists every valid block kind in presentation order of introduction.
var Kinds = []BlockKind{
	KindText, KindList, KindCode, KindTable,
	KindArchitecture, KindAPI, KindFlow, KindImageTool,
}

// ContentBlock is one renderable unit of the document. Exactly one payload
// field, the one matching Kind, must be set; the rest stay nil.
type ContentBlock struct {
	Kind  BlockKind
	Title string

	Text         *TextBlock
	List         *ListBlock
	Code         *CodeBlock
	Table        *TableBlock
	Architecture *ArchitectureBlock
	API          *APIBlock
	Flow         *FlowBlock
	ImageTool    *ImageToolBlock
}

// TextBlock is a prose paragraph.
type TextBlock struct {
	Body string
}

// ListBlock is an ordered sequence of bullet items.
type ListBlock struct {
	Items []string
}

// CodeBlock is a source sample with a language tag for fencing.
type CodeBlock struct {
	Language string
	Source   string
}

// TableBlock holds column headers plus rows of cell values.
type TableBlock struct {
	Headers []string
	Rows    [][]string
}

// ArchitectureBlock describes a layered system diagram.
type ArchitectureBlock struct {
	Layers []ArchitectureLayer
}

// ArchitectureLayer is one horizontal band of the diagram.
type ArchitectureLayer struct {
	Name      string
	Items     []string
	Highlight bool
}

// APIBlock describes a set of HTTP endpoints.
type APIBlock struct {
	Endpoints []Endpoint
}

// Endpoint is one HTTP operation with request/response samples.
type Endpoint struct {
	Method   string
	Path     string
	Summary  string
	Request  string
	Response string
}

// FlowBlock is a linear sequence of process steps.
type FlowBlock struct {
	Steps []string
}

// ImageToolBlock marks the embedding point of the interactive image
// editor. It carries no payload of its own; all behavior lives in the
// edit session.
type ImageToolBlock struct{}

// IsWellFormed reports whether the block's payload matches its declared
// kind. A block that fails this check is skipped by the renderer, never
// treated as a fatal error.
func IsWellFormed(b ContentBlock) bool {
	switch b.Kind {
	case KindText:
		return b.Text != nil
	case KindList:
		return b.List != nil
	case KindCode:
		return b.Code != nil
	case KindTable:
		return b.Table != nil && len(b.Table.Headers) > 0
	case KindArchitecture:
		return b.Architecture != nil && len(b.Architecture.Layers) > 0
	case KindAPI:
		return b.API != nil && len(b.API.Endpoints) > 0
	case KindFlow:
		return b.Flow != nil && len(b.Flow.Steps) > 0
	case KindImageTool:
		return b.ImageTool != nil
	default:
		return false
	}
}
