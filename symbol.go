package symbol

import (
	"strconv"
	"strings"
	"unsafe"
)

// Symbol is an interned string handle with O(1) equality. Symbols are
// cheap to copy and should be passed by value.
//
// The native == operator compares identity: two Symbols are equal if and
// only if they reference the same canonical allocation, which for
// Symbols interned through the same table is equivalent to their text
// being equal. Use EqualText to compare a Symbol against a raw string by
// content.
//
// The zero Symbol references no allocation: it reads as empty text, has
// address zero, and compares equal only to other zero Symbols.
type Symbol struct {
	e *entry
}

// From interns text in the default table and returns its Symbol.
func From(text string) Symbol {
	return defaultTable.Symbol(text)
}

// FromBytes interns the contents of b in the default table.
func FromBytes(b []byte) Symbol {
	return defaultTable.SymbolBytes(b)
}

// FromStatic wraps a fixed, compile-time-known literal in a Symbol
// without touching any table. It exists so that hot paths can
// pre-construct well-known Symbols with no locking:
//
//	var symIf = symbol.FromStatic("if")
//
// Each call allocates a distinct canonical allocation, so call it once
// per literal and reuse the result; a second FromStatic of the same text,
// or a table-interned Symbol of the same text, compares unequal by
// identity (EqualText still works). This caveat is not enforced.
func FromStatic(text string) Symbol {
	return Symbol{e: newEntry(text)}
}

// Addr returns the numeric identity of the Symbol's canonical
// allocation, or 0 for the zero Symbol. Addresses are stable for the
// process lifetime and meaningless across processes or runs.
func (s Symbol) Addr() uintptr {
	return uintptr(unsafe.Pointer(s.e))
}

// Text returns the Symbol's canonical text. The returned string is
// backed by the canonical allocation and remains valid for as long as
// the program runs.
func (s Symbol) Text() string {
	if s.e == nil {
		return ""
	}
	return s.e.text
}

// Hash returns a 64-bit content hash of the Symbol's text, precomputed
// at intern time. Symbols with equal text hash equally even when they
// come from different tables.
func (s Symbol) Hash() uint64 {
	if s.e == nil {
		return emptyHash
	}
	return s.e.hash
}

var emptyHash = newEntry("").hash

// Compare orders Symbols by address identity: it returns a negative
// number, zero, or a positive number as s sorts before, equal to, or
// after other. The order is total and consistent with == but is NOT
// lexicographic; callers needing content order must compare Text or use
// CompareText.
func (s Symbol) Compare(other Symbol) int {
	a, b := s.Addr(), other.Addr()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether s sorts before other in address order. See
// Compare.
func (s Symbol) Less(other Symbol) bool {
	return s.Addr() < other.Addr()
}

// EqualText reports whether the Symbol's text equals text. Unlike ==,
// this is content comparison, and holds regardless of whether text was
// ever interned.
func (s Symbol) EqualText(text string) bool {
	return s.Text() == text
}

// CompareText compares the Symbol's text with text lexicographically,
// returning -1, 0, or +1 in the manner of strings.Compare.
func (s Symbol) CompareText(text string) int {
	return strings.Compare(s.Text(), text)
}

// Len returns the length of the Symbol's text in bytes.
func (s Symbol) Len() int {
	return len(s.Text())
}

// Bytes returns a copy of the Symbol's text as a byte slice.
func (s Symbol) Bytes() []byte {
	return []byte(s.Text())
}

// HasPrefix reports whether the Symbol's text begins with prefix.
func (s Symbol) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Text(), prefix)
}

// HasSuffix reports whether the Symbol's text ends with suffix.
func (s Symbol) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.Text(), suffix)
}

// String returns the Symbol's raw text, implementing fmt.Stringer.
func (s Symbol) String() string {
	return s.Text()
}

// GoString returns the Symbol's text as a quoted Go string literal, so
// %#v renders Symbols the way %q renders their text.
func (s Symbol) GoString() string {
	return strconv.Quote(s.Text())
}
