package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// BlockTypes are the roots an expression can reference.
var BlockTypes = map[string]struct{}{
	"palette": {},
}

func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '-' || b == '.'
}

// blockRefAtCursor returns the dotted reference under character, cut after
// the segment the cursor is on. On "palette.highlight.low" with the cursor
// on "highlight" it returns "palette.highlight". A bare root name is only
// a reference when a dot follows it.
func blockRefAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) || !isIdentChar(line[col]) {
		return ""
	}

	start, end := col, col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}
	word := line[start:end]

	root, _, hasDot := strings.Cut(word, ".")
	if _, ok := BlockTypes[root]; !ok || !hasDot {
		return ""
	}

	// Keep every segment that starts at or before the cursor.
	if next := strings.IndexByte(word[col-start:], '.'); next >= 0 {
		word = word[:col-start+next]
	}
	return strings.TrimSuffix(word, ".")
}

// definition resolves the reference under pos to the attribute that
// defines it.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	ref := blockRefAtCursor(lines[pos.Line], pos.Character)
	symRange, ok := result.Symbols[ref]
	if ref == "" || !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: symRange,
	}
}

func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	if loc := definition(result, content, uri, params.Position); loc != nil {
		return loc, nil
	}
	return nil, nil
}
