package render

import (
	"fmt"
	"log"
	"strings"

	"docview/internal/document"
)

// MarkdownRenderer maps content blocks to Markdown. Rendering is a total
// function over the block domain: every declared kind has a presentation,
// and malformed or unknown blocks yield the empty string so the rest of
// the document keeps rendering.
type MarkdownRenderer struct {
	// Diagnostics receives a line per skipped block. Nil means silent.
	Diagnostics *log.Logger
}

// RenderDocument renders the title line plus every section in order.
func (r *MarkdownRenderer) RenderDocument(title string, sections []document.DocumentSection) string {
	var sb strings.Builder
	sb.WriteString("# " + title + "\n\n")
	for _, s := range sections {
		out := r.RenderSection(s)
		if out == "" {
			continue
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSection renders the section heading and its blocks in the given
// order, skipping any block that fails its shape check.
func (r *MarkdownRenderer) RenderSection(s document.DocumentSection) string {
	var sb strings.Builder
	sb.WriteString("## " + s.Title + "\n\n")
	for i, b := range s.Blocks {
		out := r.RenderBlock(b)
		if out == "" {
			r.diagf("section %s: skipped block %d (kind %q)", s.ID, i, b.Kind)
			continue
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderBlock renders one block, or returns "" for malformed or unknown
// kinds.
func (r *MarkdownRenderer) RenderBlock(b document.ContentBlock) string {
	if !document.IsWellFormed(b) {
		return ""
	}
	switch b.Kind {
	case document.KindText:
		return renderText(b)
	case document.KindList:
		return renderList(b)
	case document.KindCode:
		return renderCode(b)
	case document.KindTable:
		return renderTable(b)
	case document.KindArchitecture:
		return renderArchitecture(b)
	case document.KindAPI:
		return renderAPI(b)
	case document.KindFlow:
		return renderFlow(b)
	case document.KindImageTool:
		return renderImageTool(b)
	default:
		return ""
	}
}

func (r *MarkdownRenderer) diagf(format string, args ...any) {
	if r.Diagnostics != nil {
		r.Diagnostics.Printf(format, args...)
	}
}

func blockTitle(b document.ContentBlock) string {
	if b.Title == "" {
		return ""
	}
	return "### " + b.Title + "\n\n"
}

func renderText(b document.ContentBlock) string {
	return blockTitle(b) + b.Text.Body + "\n"
}

func renderList(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	for _, item := range b.List.Items {
		sb.WriteString("- " + item + "\n")
	}
	return sb.String()
}

func renderCode(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	sb.WriteString("```" + b.Code.Language + "\n")
	sb.WriteString(strings.TrimRight(b.Code.Source, "\n"))
	sb.WriteString("\n```\n")
	return sb.String()
}

func renderTable(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))

	sb.WriteString("|")
	for _, h := range b.Table.Headers {
		sb.WriteString(" " + escapeCell(h) + " |")
	}
	sb.WriteString("\n|")
	for range b.Table.Headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range b.Table.Rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + escapeCell(cell) + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderArchitecture draws the layer stack as a Mermaid flowchart:
// one subgraph per layer, top layer pointing down to the next.
func renderArchitecture(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	sb.WriteString("```mermaid\ngraph TD\n")

	for i, layer := range b.Architecture.Layers {
		sb.WriteString(fmt.Sprintf("    subgraph L%d[\"%s\"]\n", i, mermaidLabel(layer.Name)))
		if len(layer.Items) == 0 {
			sb.WriteString(fmt.Sprintf("        L%dE[\" \"]\n", i))
		}
		for j, item := range layer.Items {
			sb.WriteString(fmt.Sprintf("        L%dI%d[\"%s\"]\n", i, j, mermaidLabel(item)))
		}
		sb.WriteString("    end\n")
	}
	for i := 0; i+1 < len(b.Architecture.Layers); i++ {
		sb.WriteString(fmt.Sprintf("    L%d --> L%d\n", i, i+1))
	}
	for i, layer := range b.Architecture.Layers {
		if layer.Highlight {
			sb.WriteString(fmt.Sprintf("    style L%d stroke:#2563eb,stroke-width:2px\n", i))
		}
	}

	sb.WriteString("```\n")
	return sb.String()
}

func renderAPI(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	for _, ep := range b.API.Endpoints {
		sb.WriteString(fmt.Sprintf("**%s** `%s`", ep.Method, ep.Path))
		if ep.Summary != "" {
			sb.WriteString(" — " + ep.Summary)
		}
		sb.WriteString("\n\n")
		if ep.Request != "" {
			sb.WriteString("Request:\n\n```\n" + strings.TrimRight(ep.Request, "\n") + "\n```\n\n")
		}
		if ep.Response != "" {
			sb.WriteString("Response:\n\n```\n" + strings.TrimRight(ep.Response, "\n") + "\n```\n\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func renderFlow(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	sb.WriteString("```mermaid\ngraph TD\n")
	for i, step := range b.Flow.Steps {
		sb.WriteString(fmt.Sprintf("    S%d[\"%s\"]\n", i, mermaidLabel(step)))
	}
	for i := 0; i+1 < len(b.Flow.Steps); i++ {
		sb.WriteString(fmt.Sprintf("    S%d --> S%d\n", i, i+1))
	}
	sb.WriteString("```\n")
	return sb.String()
}

// renderImageTool emits the static stand-in for the interactive editor;
// the edit session itself is driven through the CLI.
func renderImageTool(b document.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(blockTitle(b))
	sb.WriteString("> **Interactive image tool.** Run `docview edit <image> -p \"<instruction>\"`\n")
	sb.WriteString("> to upload an image, describe the edit, and receive the generated result.\n")
	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", "<br>")
}

func mermaidLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}
