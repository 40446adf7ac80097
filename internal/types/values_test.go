package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hexwell/uri/internal/types"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := make(types.Values).Set("a", "1").Set("b", "2")

	if v, ok := vals.Get("a"); !ok || v != "1" {
		t.Errorf(`Values.Get("a") = %q, %v, want "1", true`, v, ok)
	}
	if !vals.Has("b") {
		t.Error(`Values.Has("b") = false, want true`)
	}
	if vals.Has("c") {
		t.Error(`Values.Has("c") = true, want false`)
	}

	vals.Set("a", "3")
	if v, _ := vals.Get("a"); v != "3" {
		t.Errorf(`Values.Get("a") after Set = %q, want "3"`, v)
	}

	vals.Del("b")
	if vals.Has("b") {
		t.Error(`Values.Has("b") after Del = true, want false`)
	}
}

func TestValuesClone(t *testing.T) {
	t.Parallel()

	if got := (types.Values)(nil).Clone(); got != nil {
		t.Errorf("Values(nil).Clone() = %+v, want nil", got)
	}

	vals := make(types.Values).Set("a", "1")
	vals2 := vals.Clone()
	vals2.Set("a", "2")

	if diff := cmp.Diff(vals, make(types.Values).Set("a", "1")); diff != "" {
		t.Errorf("Values.Clone() mutated the source\ndiff (-got +want):\n%v", diff)
	}
}
