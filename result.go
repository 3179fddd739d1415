package censor

// Result is the masked representation of one processed value. Both
// renderings come from the same tree, so they always agree on what is
// hidden.
type Result struct {
	root      *Node
	text      textEncoder
	masked    int
	cycles    int
	truncated bool
}

// Text renders the result in the human readable form.
func (r *Result) Text() string {
	return r.text.render(r.root)
}

// String implements fmt.Stringer.
func (r *Result) String() string {
	return r.Text()
}

// JSON renders the result as a JSON document.
func (r *Result) JSON() []byte {
	return jsonEncoder{}.render(r.root)
}

// MarshalJSON implements json.Marshaler.
func (r *Result) MarshalJSON() ([]byte, error) {
	return r.JSON(), nil
}

// Value projects the result onto nil, bool, int64, uint64, float64, string,
// []any and map[string]any.
func (r *Result) Value() any {
	return r.root.value()
}

// Node returns the root of the masked tree.
func (r *Result) Node() *Node {
	return r.root
}

// Marshal encodes Value with c.
func (r *Result) Marshal(c Codec) ([]byte, error) {
	data, err := c.Marshal(r.Value())
	if err != nil {
		return nil, newCodecError(ErrMarshal, c.ContentType(), err)
	}
	return data, nil
}

// Masked reports how many leaves were replaced by the mask token.
// Pattern matches inside displayed strings are not counted.
func (r *Result) Masked() int {
	return r.masked
}

// Cycles reports how many references were cut because they pointed back
// onto the active path.
func (r *Result) Cycles() int {
	return r.cycles
}

// Truncated reports whether the depth limit cut any subtree.
func (r *Result) Truncated() bool {
	return r.truncated
}
