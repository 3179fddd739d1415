package censor

import (
	"math"
)

// NodeKind classifies a node of the masked representation.
type NodeKind uint8

const (
	NodeNull        NodeKind = iota // nil pointer, interface or top-level nil
	NodeCycle                       // reference back onto the active path
	NodeDepth                       // subtree cut by the depth limit
	NodeMasked                      // leaf replaced by the mask token
	NodeString                      // displayed text, already scrubbed
	NodeNumber                      // displayed integer, float or complex
	NodeBool                        // displayed boolean
	NodeTime                        // displayed time.Time or time.Duration
	NodeRaw                         // type handler output, verbatim
	NodeUnsupported                 // chan, func, unsafe.Pointer
	NodeStruct                      // named fields
	NodeSequence                    // slice or array
	NodeMap                         // key/value entries
)

// Sentinel texts for nodes that carry no value of their own.
const (
	CycleText       = "<cycle>"
	DepthText       = "<max depth>"
	unsupportedTmpl = "unsupported type="
)

// Node is one element of the masked representation produced by Process.
// Every masking decision has already been taken when a Node exists; the
// encoders only choose syntax.
type Node struct {
	Kind NodeKind

	// Text is the rendered leaf for scalar kinds, the mask token for
	// NodeMasked and the sentinel for NodeCycle and NodeDepth.
	Text string

	// Scalar holds the displayed primitive (bool, int64, uint64, float32, float64)
	// for codec projection. Nil for everything else.
	Scalar any

	// TypeName is the Go type for structs and maps, used by text decorations.
	TypeName string

	// Pointer reports the node was reached through a pointer.
	Pointer bool

	// Nil marks an absent slice or map. It renders as an empty collection.
	Nil bool

	// Members holds struct fields in declaration order, or map entries in
	// key order.
	Members []Member

	// Items holds sequence elements in order.
	Items []*Node
}

// Member is a named child of a struct or map node.
type Member struct {
	Name      string // text key: declared (or mapped) field name, or map key
	JSONName  string // JSON key
	OmitJSON  bool   // dropped from JSON output only
	OmitEmpty bool   // dropped from JSON output when Empty
	Empty     bool   // the original value was its type's empty value
	Value     *Node
}

// visibleInJSON reports whether the member is emitted by the JSON encoder.
func (m Member) visibleInJSON() bool {
	if m.OmitJSON {
		return false
	}
	return !(m.OmitEmpty && m.Empty)
}

// value projects the node onto plain Go values for codecs.
func (n *Node) value() any {
	switch n.Kind {
	case NodeNull:
		return nil
	case NodeNumber, NodeBool:
		if f, ok := n.Scalar.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return n.Text
		}
		if f, ok := n.Scalar.(float32); ok && (math.IsNaN(float64(f)) || math.IsInf(float64(f), 0)) {
			return n.Text
		}
		if n.Scalar != nil {
			return n.Scalar
		}
		return n.Text
	case NodeStruct, NodeMap:
		out := make(map[string]any, len(n.Members))
		for _, m := range n.Members {
			if n.Kind == NodeStruct && !m.visibleInJSON() {
				continue
			}
			out[m.JSONName] = m.Value.value()
		}
		return out
	case NodeSequence:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.value()
		}
		return out
	default:
		return n.Text
	}
}
