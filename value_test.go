// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombineScalarScalar(t *testing.T) {
	got := combine(IntValue(1), StringValue("bar"))
	want := ArrayValue([]Value{IntValue(1), StringValue("bar")})
	if diff := cmp.Diff(want, got, cmp.Comparer(valuesEqual)); diff != "" {
		t.Errorf("combine mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineScalarThenArray(t *testing.T) {
	prev := combine(IntValue(1), StringValue("bar"))
	got := combine(prev, FloatArrayValue([]float64{1.2, 2.3, -3.4}))
	want := ArrayValue([]Value{
		IntValue(1), StringValue("bar"), FloatValue(1.2), FloatValue(2.3), FloatValue(-3.4),
	})
	if diff := cmp.Diff(want, got, cmp.Comparer(valuesEqual)); diff != "" {
		t.Errorf("combine mismatch (-want +got):\n%s", diff)
	}
}

func TestBoolValueNormalizesToInt(t *testing.T) {
	if got := BoolValue(true); got.Kind != KindInt || got.Int != 1 {
		t.Errorf("BoolValue(true) = %+v, want Kind=Int Int=1", got)
	}
	if got := BoolValue(false); got.Kind != KindInt || got.Int != 0 {
		t.Errorf("BoolValue(false) = %+v, want Kind=Int Int=0", got)
	}
}

func TestEmptyStringNotNull(t *testing.T) {
	v := StringValue("")
	if v.Kind != KindString {
		t.Fatalf("Kind = %v, want String", v.Kind)
	}
	if len(v.Bytes) != 0 {
		t.Fatalf("Bytes = %q, want empty", v.Bytes)
	}
}

// valuesEqual compares two Values by logical content, treating a nil and
// empty Bytes/Array the same way Decode's output would.
func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind || a.Int != b.Int || a.Float != b.Float {
		return false
	}
	if string(a.Bytes) != string(b.Bytes) {
		return false
	}
	if len(a.Array) != len(b.Array) {
		return false
	}
	for i := range a.Array {
		if !valuesEqual(a.Array[i], b.Array[i]) {
			return false
		}
	}
	return true
}
