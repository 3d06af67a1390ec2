package blocks

import (
	"context"
	"testing"
)

type stubBlock struct {
	id   string
	name string
}

func (s stubBlock) Info() Info { return Info{ID: s.id, Name: s.name} }
func (s stubBlock) Run(context.Context, Input) Output {
	return Output{{Key: "ok", Value: true}}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubBlock{id: "b-1", name: "one"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := r.Get("b-1"); !ok {
		t.Fatalf("registered block not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestRegistry_DuplicateID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubBlock{id: "b-1", name: "one"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(stubBlock{id: "b-1", name: "other"}); err == nil {
		t.Fatalf("duplicate id must be rejected")
	}
}

func TestRegistry_ListSortedByName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		stubBlock{id: "b-2", name: "zeta"},
		stubBlock{id: "b-1", name: "alpha"},
		stubBlock{id: "b-3", name: "mid"},
	)
	got := r.List()
	if len(got) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(got))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, b := range got {
		if b.Info().Name != want[i] {
			t.Fatalf("position %d: want %s, got %s", i, want[i], b.Info().Name)
		}
	}
}

func TestOutput_ErrAndMap(t *testing.T) {
	out := Fail("boom")
	if out.Err() != "boom" {
		t.Fatalf("err: %q", out.Err())
	}
	ok := Output{{Key: "success", Value: true}}
	if ok.Err() != "" {
		t.Fatalf("success output must have empty error")
	}
	m := ok.Map()
	if v, _ := m["success"].(bool); !v {
		t.Fatalf("map: %v", m)
	}
}

func TestInput_Accessors(t *testing.T) {
	in := Input{
		"s":    "hello",
		"n":    float64(42), // decoded JSON number
		"ns":   "7",
		"list": []any{"a", "b"},
		"one":  "solo",
	}
	if in.String("s") != "hello" || in.String("missing") != "" {
		t.Fatalf("string accessor")
	}
	if in.Int("n", 0) != 42 || in.Int("ns", 0) != 7 || in.Int("missing", 9) != 9 {
		t.Fatalf("int accessor")
	}
	if got := in.StringSlice("list"); len(got) != 2 || got[0] != "a" {
		t.Fatalf("slice accessor: %v", got)
	}
	if got := in.StringSlice("one"); len(got) != 1 || got[0] != "solo" {
		t.Fatalf("single string promotion: %v", got)
	}
}
