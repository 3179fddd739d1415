package censor

import (
	"cmp"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	timeType          = reflect.TypeFor[time.Time]()
	durationType      = reflect.TypeFor[time.Duration]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// walker performs one depth-first traversal. It is not safe for reuse
// across Process calls.
type walker struct {
	p       *Processor
	visited visitSet
	depth   int

	masked   int
	cycles   []string
	maxDepth bool
}

func newWalker(p *Processor) *walker {
	return &walker{
		p:       p,
		visited: make(visitSet),
	}
}

// walk converts v into a Node under annotation a.
//
//nolint:exhaustive
func (w *walker) walk(v reflect.Value, a Annotation) *Node {
	if !v.IsValid() {
		return &Node{Kind: NodeNull}
	}

	if w.p.maxDepth > 0 && w.depth >= w.p.maxDepth {
		w.maxDepth = true
		return &Node{Kind: NodeDepth, Text: DepthText}
	}
	w.depth++
	defer func() { w.depth-- }()

	// Handlers see nil pointers of their type too.
	if h, ok := w.p.handlers[v.Type()]; ok && v.CanInterface() {
		return &Node{Kind: NodeRaw, Text: h(v.Interface())}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return &Node{Kind: NodeNull}
		}
	}

	switch v.Type() {
	case timeType:
		t := v.Interface().(time.Time) //nolint:errcheck
		return w.opaque(NodeTime, t.Format(w.p.timeLayout), nil, a)
	case durationType:
		return w.opaque(NodeTime, time.Duration(v.Int()).String(), nil, a)
	}

	if n, ok := w.marshalText(v, a); ok {
		return n
	}

	switch v.Kind() {
	case reflect.Pointer:
		return w.pointer(v, a)
	case reflect.Interface:
		return w.walk(v.Elem(), inherit(a))
	case reflect.Struct:
		return w.structure(v)
	case reflect.Slice, reflect.Array:
		return w.sequence(v, a)
	case reflect.Map:
		return w.mapping(v, a)
	default:
		return w.scalar(v, a)
	}
}

// pointer follows a non-nil pointer, guarding against cycles.
func (w *walker) pointer(v reflect.Value, a Annotation) *Node {
	key, _ := identity(v)
	if !w.visited.enter(key) {
		return w.cycle(v.Type())
	}
	defer w.visited.leave(key)

	n := w.walk(v.Elem(), inherit(a))
	n.Pointer = true
	return n
}

// structure walks exported fields in declaration order. Fields resolve
// with their own annotations; explicit mask and ignore are applied here,
// before the field value is visited.
func (w *walker) structure(v reflect.Value) *Node {
	rt := v.Type()
	fields := describe(rt)

	n := &Node{
		Kind:    NodeStruct,
		Members: make([]Member, 0, len(fields)),
	}
	if rt.Name() != "" {
		n.TypeName = rt.String()
	}

	for _, fd := range fields {
		if fd.annotation == AnnotationIgnore {
			continue
		}

		fv := v.Field(fd.index[0])
		m := Member{
			Name:      w.p.fieldName(fd),
			JSONName:  fd.jsonName,
			OmitJSON:  fd.omitJSON,
			OmitEmpty: fd.omitEmpty,
		}
		if fd.omitEmpty {
			m.Empty = isEmptyValue(fv)
		}

		if fd.annotation == AnnotationMask {
			m.Value = w.mask()
		} else {
			m.Value = w.walk(fv, fd.annotation)
		}

		n.Members = append(n.Members, m)
	}

	return n
}

// sequence walks slice and array elements in order. A nil slice is kept
// distinct from a nil pointer: it renders as an empty sequence.
func (w *walker) sequence(v reflect.Value, a Annotation) *Node {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			return &Node{Kind: NodeSequence, Nil: true}
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return w.text(string(v.Bytes()), a)
		}
		if key, ok := identity(v); ok {
			if !w.visited.enter(key) {
				return w.cycle(v.Type())
			}
			defer w.visited.leave(key)
		}
	}

	n := &Node{
		Kind:  NodeSequence,
		Items: make([]*Node, v.Len()),
	}
	for i := 0; i < v.Len(); i++ {
		n.Items[i] = w.walk(v.Index(i), inherit(a))
	}

	return n
}

// mapEntry is one map entry with its rendered key, used for ordering.
type mapEntry struct {
	key  reflect.Value
	val  reflect.Value
	text string
}

// mapping walks map entries in key order. Keys are shape, not content:
// they are never masked, only scrubbed.
func (w *walker) mapping(v reflect.Value, a Annotation) *Node {
	n := &Node{
		Kind:     NodeMap,
		TypeName: v.Type().String(),
	}
	if v.IsNil() {
		n.Nil = true
		return n
	}

	key, _ := identity(v)
	if !w.visited.enter(key) {
		return w.cycle(v.Type())
	}
	defer w.visited.leave(key)

	entries := make([]mapEntry, 0, v.Len())
	for it := v.MapRange(); it.Next(); {
		k := it.Key()
		entries = append(entries, mapEntry{key: k, val: it.Value(), text: w.keyText(k)})
	}
	slices.SortStableFunc(entries, compareEntries)

	n.Members = make([]Member, 0, len(entries))
	names := make(map[string]int, len(entries))
	for _, e := range entries {
		ann := inherit(a)
		if ka, ok := w.p.keyAnnotations[e.text]; ok {
			ann = ka
		}

		var val *Node
		switch ann {
		case AnnotationIgnore:
			continue
		case AnnotationMask:
			val = w.mask()
		default:
			val = w.walk(e.val, ann)
		}

		name := uniqueKey(names, e.text)
		n.Members = append(n.Members, Member{
			Name:     name,
			JSONName: name,
			Value:    val,
		})
	}

	return n
}

// uniqueKey returns text, suffixed with #2, #3 and so on when an earlier
// entry already rendered to the same key. Scrubbing can make distinct keys
// render identically.
func uniqueKey(names map[string]int, text string) string {
	name := text
	for names[name] > 0 {
		names[text]++
		name = text + "#" + strconv.Itoa(names[text])
	}
	names[name]++
	return name
}

// keyText renders a map key as a string.
func (w *walker) keyText(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		if _, handled := w.p.handlers[k.Type()]; !handled && !k.Type().Implements(textMarshalerType) {
			return w.p.scanner.scrub(k.String())
		}
	}
	return w.p.text.render(w.walk(k, AnnotationDisplay))
}

// compareEntries orders numeric keys numerically and everything else by
// rendered text. Keys that render alike are ordered by their unscrubbed
// form so the output stays deterministic.
//
//nolint:exhaustive
func compareEntries(x, y mapEntry) int {
	kx, ky := x.key, y.key
	for kx.Kind() == reflect.Interface && !kx.IsNil() {
		kx = kx.Elem()
	}
	for ky.Kind() == reflect.Interface && !ky.IsNil() {
		ky = ky.Elem()
	}

	if kx.Kind() == ky.Kind() {
		switch kx.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(kx.Int(), ky.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(kx.Uint(), ky.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(kx.Float(), ky.Float())
		}
	}

	if c := strings.Compare(x.text, y.text); c != 0 {
		return c
	}
	return strings.Compare(rawKey(kx), rawKey(ky))
}

// rawKey is the unscrubbed form of a map key. It is only used for ordering.
func rawKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if !k.CanInterface() {
		return ""
	}
	return fmt.Sprint(k.Interface())
}

// scalar resolves policy for primitive kinds.
//
//nolint:exhaustive
func (w *walker) scalar(v reflect.Value, a Annotation) *Node {
	switch v.Kind() {
	case reflect.String:
		return w.text(v.String(), a)
	case reflect.Bool:
		return w.opaque(NodeBool, strconv.FormatBool(v.Bool()), v.Bool(), a)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.opaque(NodeNumber, strconv.FormatInt(v.Int(), 10), v.Int(), a)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.opaque(NodeNumber, strconv.FormatUint(v.Uint(), 10), v.Uint(), a)
	case reflect.Float32:
		return w.opaque(NodeNumber, formatFloat(v), float32(v.Float()), a)
	case reflect.Float64:
		return w.opaque(NodeNumber, formatFloat(v), v.Float(), a)
	case reflect.Complex64, reflect.Complex128:
		bits := 128
		if v.Kind() == reflect.Complex64 {
			bits = 64
		}
		return w.opaque(NodeNumber, strconv.FormatComplex(v.Complex(), 'g', -1, bits), nil, a)
	default:
		return &Node{Kind: NodeUnsupported, Text: unsupportedTmpl + v.Kind().String()}
	}
}

// formatFloat renders the shortest decimal that round-trips to v.
func formatFloat(v reflect.Value) string {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if v.Kind() == reflect.Float32 {
		return decimal.NewFromFloat32(float32(f)).String()
	}
	return decimal.NewFromFloat(f).String()
}

// marshalText renders values implementing encoding.TextMarshaler as text.
// Values whose MarshalText fails fall through to structural walking.
func (w *walker) marshalText(v reflect.Value, a Annotation) (*Node, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return nil, false
	}
	if !v.Type().Implements(textMarshalerType) || !v.CanInterface() {
		return nil, false
	}

	tm, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		return nil, false
	}
	b, err := tm.MarshalText()
	if err != nil {
		return nil, false
	}
	return w.text(string(b), a), true
}

// text resolves policy for textual leaves and scrubs what is displayed.
func (w *walker) text(s string, a Annotation) *Node {
	if resolve(a, leafText, s == "") == decideMask {
		return w.mask()
	}
	return &Node{Kind: NodeString, Text: w.p.scanner.scrub(s)}
}

// opaque resolves policy for non-textual scalars.
func (w *walker) opaque(kind NodeKind, text string, scalar any, a Annotation) *Node {
	if resolve(a, leafOpaque, false) == decideMask {
		return w.mask()
	}
	return &Node{Kind: kind, Text: text, Scalar: scalar}
}

func (w *walker) mask() *Node {
	w.masked++
	return &Node{Kind: NodeMasked, Text: w.p.maskValue}
}

func (w *walker) cycle(rt reflect.Type) *Node {
	w.cycles = append(w.cycles, rt.String())
	return &Node{Kind: NodeCycle, Text: CycleText}
}

// isEmptyValue reports whether v is its type's empty value, following the
// rules encoding/json applies to omitempty.
//
//nolint:exhaustive
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
