package types

import (
	"testing"

	"ucc/internal/diag"
	"ucc/internal/source"
)

func TestSameByCanonicalName(t *testing.T) {
	if !Same(Int, Int) {
		t.Fatalf("expected int to equal itself")
	}
	if Same(Int, Long) {
		t.Fatalf("int and long must differ")
	}
	a := ArrayOf(Int)
	b := ArrayOf(Int)
	if !Same(a, b) {
		t.Fatalf("two int[] descriptors must compare equal")
	}
	if !Same(ArrayOf(a), ArrayOf(b)) {
		t.Fatalf("nested array descriptors must compare equal")
	}
	if Same(ArrayOf(Int), ArrayOf(Long)) {
		t.Fatalf("int[] and long[] must differ")
	}
}

func TestIsCompatibleWidening(t *testing.T) {
	cases := []struct {
		from, to Type
		want     bool
	}{
		{Int, Int, true},
		{Int, Long, true},
		{Int, Float, true},
		{Long, Float, true},
		{Long, Int, false},
		{Float, Long, false},
		{String, Int, false},
		{Null, ArrayOf(Int), true},
		{Null, NewUser("foo"), true},
		{Null, Int, false},
		{ArrayOf(Int), ArrayOf(Long), false},
	}
	for _, c := range cases {
		if got := IsCompatible(c.from, c.to); got != c.want {
			t.Errorf("IsCompatible(%s, %s) = %v, want %v", c.from.Name(), c.to.Name(), got, c.want)
		}
	}
}

func TestJoinNumeric(t *testing.T) {
	cases := []struct {
		a, b, want Type
	}{
		{Int, Int, Int},
		{Int, Long, Long},
		{Long, Int, Long},
		{Int, Float, Float},
		{Long, Float, Float},
		{String, String, String},
	}
	for _, c := range cases {
		bag := diag.NewBag(4)
		got := Join(diag.BagReporter{Bag: bag}, 6, source.Pos{}, c.a, c.b)
		if !Same(got, c.want) {
			t.Errorf("Join(%s, %s) = %s, want %s", c.a.Name(), c.b.Name(), got.Name(), c.want.Name())
		}
		if bag.Len() != 0 {
			t.Errorf("Join(%s, %s) reported %d diagnostics", c.a.Name(), c.b.Name(), bag.Len())
		}
	}
}

func TestJoinMismatchRecoversToInt(t *testing.T) {
	bag := diag.NewBag(4)
	got := Join(diag.BagReporter{Bag: bag}, 6, source.Pos{}, String, Int)
	if !Same(got, Int) {
		t.Fatalf("expected int recovery, got %s", got.Name())
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if bag.Items()[0].Code != diag.SemTypeMismatch {
		t.Fatalf("unexpected code %v", bag.Items()[0].Code)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNumeric(Int) || !IsNumeric(Long) || !IsNumeric(Float) {
		t.Fatalf("int, long, float are numeric")
	}
	if IsNumeric(String) || IsNumeric(Boolean) {
		t.Fatalf("string and boolean are not numeric")
	}
	if !IsIntegral(Int) || !IsIntegral(Long) {
		t.Fatalf("int and long are integral")
	}
	if IsIntegral(Float) {
		t.Fatalf("float is not integral")
	}
	if !IsPrimitive(Void) || IsPrimitive(ArrayOf(Int)) || IsPrimitive(NewUser("foo")) {
		t.Fatalf("primitive predicate misclassified a type")
	}
}

func TestMangle(t *testing.T) {
	if got := Int.Mangle(); got != "UC_PRIMITIVE(int)" {
		t.Fatalf("int mangle = %q", got)
	}
	if got := ArrayOf(String).Mangle(); got != "UC_ARRAY(UC_PRIMITIVE(string))" {
		t.Fatalf("string[] mangle = %q", got)
	}
	if got := NewUser("foo").Mangle(); got != "UC_REFERENCE(foo)" {
		t.Fatalf("user mangle = %q", got)
	}
	if got := ArrayOf(NewUser("foo")).Mangle(); got != "UC_ARRAY(UC_REFERENCE(foo))" {
		t.Fatalf("foo[] mangle = %q", got)
	}
}
