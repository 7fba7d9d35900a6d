package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/parser"
	"github.com/jsvensson/labtone/internal/theme"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "labtone"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *color.Node
	Symbols     map[string]protocol.Range // "palette.base", "theme.background" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // expression is a traversal such as palette.base
}

func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses content and collects every diagnostic it can find,
// together with a symbol table and the resolved color of each value.
// Unlike parser.ParseSource it keeps going after the first bad entry.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	body, ok := file.Body.(*hclsyntax.Body)
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Keep whatever palette the parser recovered so completion still
		// works while a reference is half typed.
		if ok {
			result.Palette = recoverPalette(body)
		}
		return result
	}
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody, themeBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBody = block.Body
		case "theme":
			themeBody = block.Body
		case "meta":
			// decoded by the parser; nothing to resolve
		default:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q", block.Type))
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	result.Palette = parser.EvalPalette(paletteBody, result)

	if themeBody != nil {
		result.analyzeTheme(themeBody, theme.BuildEvalContext(result.Palette))
	}

	return result
}

type discardWalker struct{}

func (discardWalker) Entry(parser.Entry)     {}
func (discardWalker) Error(hcl.Range, error) {}

func recoverPalette(body *hclsyntax.Body) *color.Node {
	for _, block := range body.Blocks {
		if block.Type == "palette" {
			return parser.EvalPalette(block.Body, discardWalker{})
		}
	}
	return nil
}

// Entry implements parser.PaletteWalker. A group's color attribute is
// recorded under the group's own path.
func (r *AnalysisResult) Entry(e parser.Entry) {
	r.Symbols[e.Symbol] = hclRangeToLSP(e.Attr.SrcRange)
	r.addColor(e.Attr.Expr, e.Color)
}

// Error implements parser.PaletteWalker.
func (r *AnalysisResult) Error(rng hcl.Range, err error) {
	r.addError(rng, err.Error())
}

func (r *AnalysisResult) analyzeTheme(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := body.Attributes[name]
		symbol := "theme." + name
		r.Symbols[symbol] = hclRangeToLSP(attr.SrcRange)

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", symbol, diags.Error()))
			continue
		}
		c, err := theme.ParseValue(val)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", symbol, err))
			continue
		}
		r.addColor(attr.Expr, c)
	}

	for _, block := range body.Blocks {
		r.addError(block.DefRange(), fmt.Sprintf("theme: nested block %q is not allowed", block.Type))
	}
}

func (r *AnalysisResult) addColor(expr hclsyntax.Expression, c color.Color) {
	r.Colors = append(r.Colors, ColorLocation{
		Range: hclRangeToLSP(expr.Range()),
		Color: c,
		IsRef: isReferenceExpr(expr),
	})
}

func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}
	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}
	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}
	return diag
}

func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.addDiagnostic(rng, DiagError, msg)
}

func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.addDiagnostic(rng, DiagWarning, msg)
}

func (r *AnalysisResult) addDiagnostic(rng hcl.Range, sev protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &sev,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// isReferenceExpr reports whether expr is a traversal like palette.base
// rather than a literal or a function call.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
