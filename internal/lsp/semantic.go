package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Token types in legend order.
const (
	tokenKeyword uint32 = iota
	tokenProperty
	tokenNamespace
	tokenString
	tokenFunction
	tokenNumber
)

var semanticTokenTypes = []string{
	"keyword",   // block names
	"property",  // attribute names and reference segments
	"namespace", // reference roots such as palette
	"string",    // color literals
	"function",  // brighten(), mix(), ...
	"number",
}

var semanticTokenModifiers = []string{
	"declaration",
}

const modDeclaration uint32 = 1

// SemanticToken is one token before delta encoding. Positions are 0-based.
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	Type      uint32
	Modifiers uint32
}

func tokenAt(r hcl.Range, length int, typ, mods uint32) SemanticToken {
	return SemanticToken{
		Line:      uint32(r.Start.Line - 1),
		StartChar: uint32(r.Start.Column - 1),
		Length:    uint32(length),
		Type:      typ,
		Modifiers: mods,
	}
}

// encodeTokens sorts tokens by position and emits the protocol's five
// integers per token, with line and start deltas relative to the previous
// token.
func encodeTokens(tokens []SemanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevChar uint32
	for _, tok := range tokens {
		deltaStart := tok.StartChar
		if tok.Line == prevLine {
			deltaStart -= prevChar
		}
		data = append(data, tok.Line-prevLine, deltaStart, tok.Length, tok.Type, tok.Modifiers)
		prevLine, prevChar = tok.Line, tok.StartChar
	}
	return data
}

// semanticTokensFull tokenizes the whole document. Unparseable documents
// yield no tokens.
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return []uint32{}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}
	return encodeTokens(bodyTokens(body, nil))
}

func bodyTokens(body *hclsyntax.Body, tokens []SemanticToken) []SemanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, tokenAt(block.TypeRange, len(block.Type), tokenKeyword, 0))
		tokens = bodyTokens(block.Body, tokens)
	}
	for name, attr := range body.Attributes {
		tokens = append(tokens, tokenAt(attr.NameRange, len(name), tokenProperty, modDeclaration))
		tokens = exprTokens(attr.Expr, tokens)
	}
	return tokens
}

func exprTokens(expr hclsyntax.Expression, tokens []SemanticToken) []SemanticToken {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() == cty.Number {
			tokens = append(tokens, tokenAt(e.SrcRange, e.SrcRange.End.Column-e.SrcRange.Start.Column, tokenNumber, 0))
		}
	case *hclsyntax.TemplateExpr:
		// Only quoted color literals are highlighted; other strings are
		// left to the client's grammar.
		if e.IsStringLiteral() {
			if s, ok := literalString(e); ok {
				if _, err := color.ParseHex(s); err == nil {
					tokens = append(tokens, tokenAt(e.SrcRange, e.SrcRange.End.Column-e.SrcRange.Start.Column, tokenString, 0))
				}
			}
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = traversalTokens(e.Traversal, tokens)
	case *hclsyntax.FunctionCallExpr:
		tokens = append(tokens, tokenAt(e.NameRange, len(e.Name), tokenFunction, 0))
		for _, arg := range e.Args {
			tokens = exprTokens(arg, tokens)
		}
	case *hclsyntax.UnaryOpExpr:
		tokens = exprTokens(e.Val, tokens)
	case *hclsyntax.RelativeTraversalExpr:
		tokens = exprTokens(e.Source, tokens)
	}
	return tokens
}

func literalString(e *hclsyntax.TemplateExpr) (string, bool) {
	if len(e.Parts) != 1 {
		return "", false
	}
	lit, ok := e.Parts[0].(*hclsyntax.LiteralValueExpr)
	if !ok || lit.Val.Type() != cty.String {
		return "", false
	}
	return lit.Val.AsString(), true
}

// traversalTokens marks the root of a reference like palette.highlight.low
// as a namespace and every following segment as a property.
func traversalTokens(traversal hcl.Traversal, tokens []SemanticToken) []SemanticToken {
	if len(traversal) == 0 {
		return tokens
	}
	root, ok := traversal[0].(hcl.TraverseRoot)
	if !ok {
		return tokens
	}
	if _, exists := BlockTypes[root.Name]; !exists {
		return tokens
	}

	tokens = append(tokens, tokenAt(root.SrcRange, len(root.Name), tokenNamespace, 0))
	for _, step := range traversal[1:] {
		if attr, ok := step.(hcl.TraverseAttr); ok {
			// The step's range starts at the dot, so anchor on its end.
			tok := tokenAt(attr.SrcRange, len(attr.Name), tokenProperty, 0)
			tok.StartChar = uint32(attr.SrcRange.End.Column - 1 - len(attr.Name))
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
