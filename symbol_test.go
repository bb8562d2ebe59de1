package symbol

import (
	"fmt"
	"sort"
	"testing"
)

func TestEqualityProperties(t *testing.T) {
	x := From("x")
	y := From("x")
	z := From("x")
	other := From("not-x")

	// Reflexive, symmetric, transitive, consistent across interning.
	if x != x {
		t.Error("equality is not reflexive")
	}
	if x != y || y != x {
		t.Error("equality is not symmetric")
	}
	if x == y && y == z && x != z {
		t.Error("equality is not transitive")
	}
	if x == other {
		t.Error("distinct texts compare equal")
	}
}

func TestEqualText(t *testing.T) {
	// Content comparison must hold without the argument ever having
	// been interned.
	s := From("asdf")
	if !s.EqualText("asdf") {
		t.Error(`From("asdf").EqualText("asdf") = false`)
	}
	if s.EqualText("qwerty") {
		t.Error(`From("asdf").EqualText("qwerty") = true`)
	}
}

func TestCompareText(t *testing.T) {
	s := From("banana")
	cases := []struct {
		text string
		want int
	}{
		{"apple", 1},
		{"banana", 0},
		{"cherry", -1},
		{"", 1},
	}
	for _, c := range cases {
		if got := s.CompareText(c.text); got != c.want {
			t.Errorf("CompareText(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestAddressOrderIsTotal(t *testing.T) {
	tab := NewTable()

	syms := make([]Symbol, 0, 16)
	for i := 0; i < 16; i++ {
		syms = append(syms, tab.Symbol(fmt.Sprintf("order-%d", i)))
	}

	// Irreflexive.
	for _, s := range syms {
		if s.Less(s) {
			t.Fatalf("%v.Less(itself) = true", s)
		}
	}

	// Total: exactly one of <, ==, > holds for every pair, and Compare
	// agrees with Less.
	for _, a := range syms {
		for _, b := range syms {
			lt, gt, eq := a.Less(b), b.Less(a), a == b
			n := 0
			for _, v := range []bool{lt, gt, eq} {
				if v {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("trichotomy violated for %v, %v: lt=%v gt=%v eq=%v", a, b, lt, gt, eq)
			}
			if (a.Compare(b) < 0) != lt || (a.Compare(b) == 0) != eq {
				t.Fatalf("Compare disagrees with Less for %v, %v", a, b)
			}
		}
	}

	// Transitive: sorting by Less then checking monotone addresses.
	sorted := append([]Symbol(nil), syms...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Addr() <= sorted[i-1].Addr() {
			t.Fatal("sorted symbols are not strictly increasing by address")
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	for _, text := range []string{"asdf", "", "G#marker", "multi word text"} {
		s := From(text)
		again := From(fmt.Sprint(s))
		if again != s {
			t.Errorf("re-interning %q's display form gave a different Symbol", text)
		}
	}
}

func TestFormatting(t *testing.T) {
	s := From("asdf")
	if got := s.String(); got != "asdf" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprintf("%s", s); got != "asdf" {
		t.Errorf("%%s = %q", got)
	}
	if got := fmt.Sprintf("%#v", s); got != `"asdf"` {
		t.Errorf("%%#v = %q", got)
	}
}

func TestZeroValue(t *testing.T) {
	var zero, zero2 Symbol

	if zero != zero2 {
		t.Error("zero Symbols are not equal")
	}
	if zero.Addr() != 0 {
		t.Errorf("zero Symbol Addr() = %#x", zero.Addr())
	}
	if zero.Text() != "" {
		t.Errorf("zero Symbol Text() = %q", zero.Text())
	}
	if zero.Len() != 0 {
		t.Errorf("zero Symbol Len() = %d", zero.Len())
	}
	if !zero.EqualText("") {
		t.Error(`zero Symbol EqualText("") = false`)
	}
	if zero == From("") {
		t.Error("zero Symbol equals the interned empty string")
	}
	if zero.Hash() != From("").Hash() {
		t.Error("zero Symbol hash differs from interned empty string hash")
	}
}

func TestFromStatic(t *testing.T) {
	s := FromStatic("static-text")
	if !s.EqualText("static-text") {
		t.Error("FromStatic lost its text")
	}
	if s.Addr() == 0 {
		t.Error("FromStatic Symbol has zero address")
	}
	// FromStatic must not touch the table.
	if DefaultTable().Contains("static-text") {
		t.Error("FromStatic interned its text")
	}
	// The documented caveat: identity does not bridge static and
	// interned copies, content comparison does.
	interned := From("static-text-interned")
	dup := FromStatic("static-text-interned")
	if dup == interned {
		t.Error("static and interned Symbols share identity")
	}
	if !dup.EqualText(interned.Text()) {
		t.Error("static and interned Symbols lost content equality")
	}
}

func TestHash(t *testing.T) {
	a := From("hash-me")
	b := From("hash-me")
	c := From("hash-me-not")

	if a.Hash() != b.Hash() {
		t.Error("equal Symbols hash unequally")
	}
	if a.Hash() == c.Hash() {
		t.Error("distinct texts share a hash (xxhash collision on test data)")
	}
	// Content hash, not identity hash: different tables, same text.
	if NewTable().Symbol("hash-me").Hash() != a.Hash() {
		t.Error("hash depends on the owning table")
	}
}

func TestTextAccessors(t *testing.T) {
	s := From("prefix.middle.suffix")

	if got := s.Len(); got != len("prefix.middle.suffix") {
		t.Errorf("Len() = %d", got)
	}
	if got := string(s.Bytes()); got != "prefix.middle.suffix" {
		t.Errorf("Bytes() = %q", got)
	}
	if !s.HasPrefix("prefix.") {
		t.Error(`HasPrefix("prefix.") = false`)
	}
	if !s.HasSuffix(".suffix") {
		t.Error(`HasSuffix(".suffix") = false`)
	}
	if s.HasPrefix("suffix") {
		t.Error(`HasPrefix("suffix") = true`)
	}

	// Bytes returns a copy; the canonical text must stay immutable.
	b := s.Bytes()
	b[0] = 'X'
	if s.Text() != "prefix.middle.suffix" {
		t.Errorf("canonical text changed to %q after Bytes mutation", s.Text())
	}
}

func TestFromBytesGlobal(t *testing.T) {
	s1 := FromBytes([]byte("from-bytes-global"))
	s2 := From("from-bytes-global")
	if s1 != s2 {
		t.Error("FromBytes and From disagree for equal content")
	}
}
