package censor

// decision is the outcome of policy resolution for a single leaf.
type decision uint8

const (
	decideMask decision = iota
	decideDisplay
)

// leafClass groups scalar kinds by how the default policy treats them.
type leafClass uint8

const (
	// leafText covers strings, []byte and TextMarshaler output.
	leafText leafClass = iota
	// leafOpaque covers numbers, booleans and temporal values.
	leafOpaque
)

// resolve decides whether a leaf is shown or replaced by the mask token.
//
// Explicit annotations always win. Without one the engine fails closed for
// text, except for the empty string which has nothing to leak, and shows
// every other scalar.
func resolve(a Annotation, class leafClass, empty bool) decision {
	switch a {
	case AnnotationDisplay:
		return decideDisplay
	case AnnotationMask, AnnotationIgnore:
		return decideMask
	}

	if class == leafOpaque {
		return decideDisplay
	}
	if empty {
		return decideDisplay
	}
	return decideMask
}

// inherit returns the annotation a child value receives from its container.
// Indirections, sequences and map values carry the annotation down; named
// fields of a nested struct start over with their own tags.
func inherit(parent Annotation) Annotation {
	if parent == AnnotationIgnore {
		return AnnotationMask
	}
	return parent
}
