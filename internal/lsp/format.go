package lsp

import (
	"strings"

	"github.com/jsvensson/labtone/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single whole-document edit, or none when content is
// already canonical.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				End: protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
			},
			NewText: formatted,
		},
	}, nil
}

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return formatEdits(content)
}
