package lsp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/theme"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext is the kind of block the cursor is in.
type blockContext int

const (
	contextRoot blockContext = iota
	contextMeta
	contextPalette
	contextTheme
)

var topLevelBlocks = []string{"meta", "palette", "theme"}

var metaAttributes = []string{"name", "author", "appearance", "url"}

// complete produces completion items for pos. It is independent of the
// protocol handler so it can be tested directly.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	textBeforeCursor := line[:min(int(pos.Character), len(line))]

	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	if isValuePosition(textBeforeCursor) {
		if ctx == contextMeta {
			return nil
		}
		return valueCompletions()
	}

	switch ctx {
	case contextRoot:
		return topLevelCompletions(lines)
	case contextMeta:
		return metaCompletions(lines, int(pos.Line))
	}
	return nil
}

// tryPaletteCompletion offers the children of the palette node named by a
// "palette." or "palette.group." prefix before the cursor. A partial last
// segment is left for the client to filter.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 || (idx > 0 && isIdentChar(textBeforeCursor[idx-1])) {
		return nil
	}

	segments := strings.Split(textBeforeCursor[idx+len("palette."):], ".")
	node := result.Palette
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}

	if node.Children == nil {
		return nil
	}
	return nodeChildrenToCompletionItems(node)
}

// nodeChildrenToCompletionItems lists the children of node sorted by name.
// Colors carry their hex in Detail so clients can show a swatch.
func nodeChildrenToCompletionItems(node *color.Node) []protocol.CompletionItem {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		child := node.Children[name]
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}

		switch {
		case child.Children != nil:
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			detail := "color group"
			if child.Color != nil {
				detail = child.Color.Hex()
			}
			item.Detail = &detail
		case child.Color != nil:
			item.Detail = strPtr(child.Color.Hex())
			item.Documentation = protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: colorMarkdown(*child.Color),
			}
		}

		items = append(items, item)
	}
	return items
}

// isValuePosition reports whether the cursor directly follows an "=".
func isValuePosition(textBeforeCursor string) bool {
	before, after, ok := cutLast(textBeforeCursor, "=")
	if !ok || strings.TrimSpace(before) == "" {
		return false
	}
	return strings.TrimSpace(after) == ""
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// valueCompletions offers every color function as a snippet plus the
// palette root.
func valueCompletions() []protocol.CompletionItem {
	funcs := theme.Functions()
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)

	snippetFormat := protocol.InsertTextFormatSnippet
	items := make([]protocol.CompletionItem, 0, len(names)+1)
	for _, name := range names {
		fn := funcs[name]

		params := fn.Params()
		args := make([]string, len(params))
		placeholders := make([]string, len(params))
		for i, p := range params {
			args[i] = p.Name
			placeholders[i] = fmt.Sprintf("${%d:%s}", i+1, p.Name)
		}
		snippet := fmt.Sprintf("%s(%s)", name, strings.Join(placeholders, ", "))

		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))),
			Documentation:    fn.Description(),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: strPtr("palette."),
	})
	return items
}

// determineBlockContext tracks brace nesting from the top of the file down
// to the cursor line. Nested palette groups still count as the palette.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine && i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if opens := strings.Count(line, "{"); opens > 0 {
			name := ""
			if fields := strings.Fields(line); len(fields) > 0 {
				name = fields[0]
			}
			for range opens {
				stack = append(stack, name)
			}
		}
		for range strings.Count(line, "}") {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}
	switch stack[0] {
	case "meta":
		return contextMeta
	case "palette":
		return contextPalette
	case "theme":
		return contextTheme
	}
	return contextRoot
}

func metaCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)

	var items []protocol.CompletionItem
	for _, name := range metaAttributes {
		if defined[name] {
			continue
		}
		snippet := name + ` = "$0"`
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindProperty),
			InsertText:       &snippet,
			InsertTextFormat: snippetFormatPtr(),
		})
	}
	return items
}

// findDefinedAttributes returns the attribute names already set between
// the opening brace of the block around cursorLine and cursorLine.
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if name, _, ok := strings.Cut(line, "="); ok {
			name = strings.TrimSpace(name)
			if name != "" && !strings.ContainsAny(name, " {") {
				defined[name] = true
			}
		}
	}
	return defined
}

// topLevelCompletions offers the blocks the file does not have yet.
func topLevelCompletions(lines []string) []protocol.CompletionItem {
	present := make(map[string]bool)
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 1 && fields[1] == "{" {
			present[fields[0]] = true
		}
	}

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		if present[name] {
			continue
		}
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       &snippet,
			InsertTextFormat: snippetFormatPtr(),
		})
	}
	return items
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

func snippetFormatPtr() *protocol.InsertTextFormat {
	f := protocol.InsertTextFormatSnippet
	return &f
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return complete(s.getResult(uri), content, params.Position), nil
}
