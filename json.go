package censor

import (
	"bytes"

	"github.com/goccy/go-json"
)

// jsonEncoder renders a Node as a JSON document.
type jsonEncoder struct{}

// render returns the JSON form of n. The output is always valid JSON.
func (e jsonEncoder) render(n *Node) []byte {
	var buf bytes.Buffer
	e.write(&buf, n)
	return buf.Bytes()
}

func (e jsonEncoder) write(buf *bytes.Buffer, n *Node) {
	switch n.Kind {
	case NodeNull:
		buf.WriteString("null")
	case NodeBool:
		buf.WriteString(n.Text)
	case NodeNumber:
		if json.Valid([]byte(n.Text)) {
			buf.WriteString(n.Text)
		} else {
			// NaN, Inf and complex values have no JSON number form.
			writeString(buf, n.Text)
		}
	case NodeStruct:
		buf.WriteByte('{')
		first := true
		for _, m := range n.Members {
			if !m.visibleInJSON() {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeString(buf, m.JSONName)
			buf.WriteByte(':')
			e.write(buf, m.Value)
		}
		buf.WriteByte('}')
	case NodeMap:
		buf.WriteByte('{')
		for i, m := range n.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, m.JSONName)
			buf.WriteByte(':')
			e.write(buf, m.Value)
		}
		buf.WriteByte('}')
	case NodeSequence:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			e.write(buf, item)
		}
		buf.WriteByte(']')
	default:
		writeString(buf, n.Text)
	}
}

// writeString appends s as a quoted JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		// Strings always marshal; keep the output valid regardless.
		buf.WriteString(`""`)
		return
	}
	buf.Write(b)
}
