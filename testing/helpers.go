// Package testing provides fixtures and helpers for testing code that uses censor.
package testing

import (
	"testing"

	"github.com/zoobzio/censor"
)

// TestProcessor returns a processor built from opts, failing tb on error.
func TestProcessor(tb testing.TB, opts ...censor.Option) *censor.Processor {
	tb.Helper()
	p, err := censor.New(opts...)
	if err != nil {
		tb.Fatalf("censor.New() error: %v", err)
	}
	return p
}

// CardPattern matches 16-digit card numbers grouped by dashes.
const CardPattern = `\d{4}-\d{4}-\d{4}-\d{4}`

// SimpleUser is a fixture with no annotations.
type SimpleUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SanitizedUser is a fixture exercising every annotation.
type SanitizedUser struct {
	ID       int      `json:"id"`
	Name     string   `json:"name" censor:"display"`
	Email    string   `json:"email"`
	Note     string   `json:"note,omitempty" censor:"display"`
	Password string   `json:"-" censor:"-"`
	PIN      int      `json:"pin" censor:"mask"`
	Tags     []string `json:"tags" censor:"display"`
}

// NewSanitizedUser returns a populated SanitizedUser.
func NewSanitizedUser() SanitizedUser {
	return SanitizedUser{
		ID:       42,
		Name:     "Alice",
		Email:    "alice@example.com",
		Note:     "card 4111-1111-1111-1111 on file",
		Password: "hunter2",
		PIN:      1234,
		Tags:     []string{"admin", "ops"},
	}
}

// LinkedNode is a fixture for self-referential graphs.
type LinkedNode struct {
	Label string      `json:"label" censor:"display"`
	Next  *LinkedNode `json:"next"`
}

// Ring returns n nodes whose last node points back at the first.
func Ring(n int) *LinkedNode {
	if n < 1 {
		return nil
	}
	head := &LinkedNode{Label: "n0"}
	cur := head
	for i := 1; i < n; i++ {
		cur.Next = &LinkedNode{Label: "n" + string(rune('0'+i%10))}
		cur = cur.Next
	}
	cur.Next = head
	return head
}
