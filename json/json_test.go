package json

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/zoobzio/censor"
)

type account struct {
	ID    int    `json:"id"`
	Owner string `json:"owner" censor:"display"`
	Token string `json:"token"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshalResult(t *testing.T) {
	p := censor.MustNew()
	r := p.Process(account{ID: 7, Owner: "alice", Token: "s3cr3t"})

	data, err := r.Marshal(New())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got["owner"] != "alice" {
		t.Errorf("owner = %v, want %q", got["owner"], "alice")
	}
	if got["token"] != censor.DefaultMaskValue {
		t.Errorf("token = %v, want %q", got["token"], censor.DefaultMaskValue)
	}
	if got["id"] != float64(7) {
		t.Errorf("id = %v, want 7", got["id"])
	}
}

func TestMarshalMatchesEncoder(t *testing.T) {
	p := censor.MustNew()
	r := p.Process(map[string]int{"b": 2, "a": 1})

	data, err := r.Marshal(New())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if string(data) != string(r.JSON()) {
		t.Errorf("Marshal() = %s, want %s", data, r.JSON())
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := censor.MustNew().Process(nil).Marshal(New())
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}
