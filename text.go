package censor

import (
	"strings"
)

// textEncoder renders a Node in a fmt-like human readable form.
type textEncoder struct {
	displayStructName    bool
	displayMapType       bool
	displayPointerSymbol bool
}

// render returns the text form of n.
func (e textEncoder) render(n *Node) string {
	var b strings.Builder
	e.write(&b, n)
	return b.String()
}

func (e textEncoder) write(b *strings.Builder, n *Node) {
	if n.Pointer && e.displayPointerSymbol && n.Kind != NodeNull && n.Kind != NodeMasked {
		b.WriteByte('&')
	}

	switch n.Kind {
	case NodeNull:
		b.WriteString("<nil>")
	case NodeStruct:
		if e.displayStructName {
			b.WriteString(n.TypeName)
		}
		b.WriteByte('{')
		for i, m := range n.Members {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.Name)
			b.WriteByte(':')
			e.write(b, m.Value)
		}
		b.WriteByte('}')
	case NodeSequence:
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			e.write(b, item)
		}
		b.WriteByte(']')
	case NodeMap:
		if e.displayMapType && n.TypeName != "" {
			b.WriteString(n.TypeName)
		} else {
			b.WriteString("map")
		}
		b.WriteByte('[')
		for i, m := range n.Members {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.Name)
			b.WriteByte(':')
			e.write(b, m.Value)
		}
		b.WriteByte(']')
	default:
		b.WriteString(n.Text)
	}
}
