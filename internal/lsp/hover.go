package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/labtone/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange reports whether pos lies in [r.Start, r.End).
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText returns the source text covered by r. Ranges past the end of
// a line or of the document are clipped.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := min(int(r.End.Line), len(lines)-1)
	if startLine >= len(lines) || endLine < startLine {
		return ""
	}

	clip := func(line string, char uint32) int {
		return min(int(char), len(line))
	}

	if startLine == endLine {
		line := lines[startLine]
		start, end := clip(line, r.Start.Character), clip(line, r.End.Character)
		if end < start {
			return ""
		}
		return line[start:end]
	}

	parts := make([]string, 0, endLine-startLine+1)
	parts = append(parts, lines[startLine][clip(lines[startLine], r.Start.Character):])
	parts = append(parts, lines[startLine+1:endLine]...)
	parts = append(parts, lines[endLine][:clip(lines[endLine], r.End.Character)])
	return strings.Join(parts, "\n")
}

// colorMarkdown renders every notation of c the tooling understands.
func colorMarkdown(c color.Color) string {
	return fmt.Sprintf("`%s` · `%s`\n\n`%s` · `%s` · `%s`",
		c.Hex(), c.RGB(), c.HSL(), c.HSV(), c.LabString())
}

// hover describes the color under pos. Anything other than a plain literal
// gets its source text as a bold header, so references and function calls
// show what they resolved from.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		md := colorMarkdown(cl.Color)
		if src := extractText(content, cl.Range); !isLiteralText(src) {
			md = fmt.Sprintf("**%s**\n\n%s", src, md)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	return nil
}

func isLiteralText(s string) bool {
	return strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "#")
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return hover(result, content, params.Position), nil
}
