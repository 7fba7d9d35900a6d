package lsp

import (
	"strings"

	"github.com/jsvensson/labtone/colorspace"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color to the protocol's float channels in [0, 1].
func colorToLSP(c color.Color) protocol.Color {
	v := c.Vec()
	return protocol.Color{
		Red:   float32(v.X),
		Green: float32(v.Y),
		Blue:  float32(v.Z),
		Alpha: 1.0,
	}
}

// colorFromLSP rounds the protocol's channels to the nearest 8-bit color.
// Alpha is ignored.
func colorFromLSP(c protocol.Color) color.Color {
	return color.FromVec(colorspace.V3(float64(c.Red), float64(c.Green), float64(c.Blue)))
}

func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers a replacement for a picked color. Only hex
// literals are rewritten; references and function calls such as
// darken(palette.base, 0.1) get no presentation so the picker cannot
// flatten them into literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	hex := colorFromLSP(params.Color).Hex()
	text := extractText(content, params.Range)

	var newText string
	switch {
	case strings.HasPrefix(text, `"`):
		newText = `"` + hex + `"`
	case strings.HasPrefix(text, "#"):
		newText = hex
	default:
		return []protocol.ColorPresentation{}
	}

	return []protocol.ColorPresentation{
		{
			Label: hex,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		},
	}
}

func (s *Server) textDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
