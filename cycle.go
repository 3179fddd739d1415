package censor

import (
	"reflect"
)

// visitKey identifies a reference on the active recursion path.
// The type is part of the key because a struct and its first field share
// an address.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// visitSet tracks the references currently being walked.
// It is owned by a single Process call.
type visitSet map[visitKey]struct{}

// identity returns the visit key for references that can close a cycle:
// non-nil pointers, maps and non-empty slices.
func identity(v reflect.Value) (visitKey, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return visitKey{}, false
		}
		return visitKey{ptr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return visitKey{}, false
		}
		return visitKey{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}, true
	default:
		return visitKey{}, false
	}
}

// enter records k on the active path. It reports false when k is already
// there, meaning the walk has looped back onto itself.
func (s visitSet) enter(k visitKey) bool {
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// leave removes k once its subtree is finished.
func (s visitSet) leave(k visitKey) {
	delete(s, k)
}
