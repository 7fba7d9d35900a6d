package lsp

import (
	"slices"
	"testing"
)

func TestEncodeTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []SemanticToken
		want   []uint32
	}{
		{"empty", []SemanticToken{}, []uint32{}},
		{
			"single",
			[]SemanticToken{{Line: 2, StartChar: 5, Length: 7}},
			[]uint32{2, 5, 7, 0, 0},
		},
		{
			"same line",
			[]SemanticToken{
				{Line: 0, StartChar: 0, Length: 7, Type: tokenKeyword},
				{Line: 0, StartChar: 8, Length: 4, Type: tokenProperty, Modifiers: modDeclaration},
			},
			[]uint32{0, 0, 7, 0, 0, 0, 8, 4, 1, 1},
		},
		{
			"different lines",
			[]SemanticToken{
				{Line: 0, StartChar: 0, Length: 7},
				{Line: 2, StartChar: 2, Length: 4, Type: tokenProperty},
			},
			[]uint32{0, 0, 7, 0, 0, 2, 2, 4, 1, 0},
		},
		{
			"unsorted input",
			[]SemanticToken{
				{Line: 1, StartChar: 0, Length: 4, Type: tokenProperty},
				{Line: 0, StartChar: 0, Length: 7},
			},
			[]uint32{0, 0, 7, 0, 0, 1, 0, 4, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeTokens(tt.tokens); !slices.Equal(got, tt.want) {
				t.Errorf("encodeTokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSemanticTokensFull(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
	}{
		{"empty", "", []uint32{}},
		{"parse error", "palette {", []uint32{}},
		{
			"color literal",
			"palette {\n  base = \"#191724\"\n}",
			[]uint32{
				0, 0, 7, tokenKeyword, 0, // palette
				1, 2, 4, tokenProperty, modDeclaration, // base
				0, 7, 9, tokenString, 0, // "#191724"
			},
		},
		{
			"plain string is skipped",
			"meta {\n  name = \"Test\"\n}",
			[]uint32{
				0, 0, 4, tokenKeyword, 0,
				1, 2, 4, tokenProperty, modDeclaration,
			},
		},
		{
			"reference",
			"theme {\n  bg = palette.highlight.low\n}",
			[]uint32{
				0, 0, 5, tokenKeyword, 0, // theme
				1, 2, 2, tokenProperty, modDeclaration, // bg
				0, 5, 7, tokenNamespace, 0, // palette
				0, 8, 9, tokenProperty, 0, // highlight
				0, 10, 3, tokenProperty, 0, // low
			},
		},
		{
			"function call",
			"palette {\n  dim = darken(palette.base, 0.1)\n}",
			[]uint32{
				0, 0, 7, tokenKeyword, 0, // palette
				1, 2, 3, tokenProperty, modDeclaration, // dim
				0, 6, 6, tokenFunction, 0, // darken
				0, 7, 7, tokenNamespace, 0, // palette
				0, 8, 4, tokenProperty, 0, // base
				0, 6, 3, tokenNumber, 0, // 0.1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := semanticTokensFull(tt.content); !slices.Equal(got, tt.want) {
				t.Errorf("semanticTokensFull() = %v, want %v", got, tt.want)
			}
		})
	}
}
