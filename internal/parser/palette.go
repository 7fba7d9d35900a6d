package parser

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/theme"
)

// Entry is a palette attribute that evaluated to a color.
type Entry struct {
	// Symbol is the dotted path of the entry, e.g. "palette.highlight.low".
	// For a group's own color attribute it is the group's path.
	Symbol string
	Attr   *hclsyntax.Attribute
	Color  color.Color
}

// PaletteWalker receives palette entries and per-attribute failures while
// a palette body is evaluated.
type PaletteWalker interface {
	Entry(e Entry)
	Error(rng hcl.Range, err error)
}

// paletteItem represents an attribute or block in source order.
type paletteItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// EvalPalette evaluates a palette block body in source order so later
// entries can reference earlier ones. Failing attributes are reported to w
// and left out of the tree; evaluation continues with the next item.
func EvalPalette(body *hclsyntax.Body, w PaletteWalker) *color.Node {
	root := &color.Node{}
	evalPaletteBody(body, root, root, "palette", w)
	return root
}

func evalPaletteBody(body *hclsyntax.Body, root, node *color.Node, prefix string, w PaletteWalker) {
	var items []paletteItem
	for _, attr := range body.Attributes {
		items = append(items, paletteItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, paletteItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})

	for _, item := range items {
		if item.block != nil {
			if node.Children == nil {
				node.Children = make(map[string]*color.Node)
			}
			child := &color.Node{}
			node.Children[item.block.Type] = child
			evalPaletteBody(item.block.Body, root, child, prefix+"."+item.block.Type, w)
			continue
		}

		attr := item.attr
		symbol := prefix + "." + attr.Name
		if attr.Name == "color" {
			symbol = prefix
		}

		// The context is rebuilt per item so it sees everything evaluated so far.
		ctx := theme.BuildEvalContext(root)
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			w.Error(attr.SrcRange, fmt.Errorf("evaluating %s: %s", symbol, diags.Error()))
			continue
		}
		c, err := theme.ParseValue(val)
		if err != nil {
			w.Error(attr.SrcRange, fmt.Errorf("%s: %w", symbol, err))
			continue
		}

		if attr.Name == "color" {
			node.Color = &c
		} else {
			if node.Children == nil {
				node.Children = make(map[string]*color.Node)
			}
			node.Children[attr.Name] = &color.Node{Color: &c}
		}
		w.Entry(Entry{Symbol: symbol, Attr: attr, Color: c})
	}
}

// firstError is a PaletteWalker that keeps only the first failure.
type firstError struct {
	err error
}

func (f *firstError) Entry(Entry) {}

func (f *firstError) Error(_ hcl.Range, err error) {
	if f.err == nil {
		f.err = err
	}
}
