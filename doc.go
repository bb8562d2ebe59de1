// Package symbol provides globally interned strings with O(1) equality.
//
// A [Symbol] is a small, copyable handle to a canonical allocation of its
// text. The package guarantees that any two Symbols interned from equal
// text reference the same allocation, so comparing two Symbols compares a
// single pointer rather than the string contents. This is useful for
// compilers, parsers, and other programs that hash and compare
// identifier-like strings constantly.
//
// # Quick Start
//
//	s1 := symbol.From("asdf")
//	s2 := symbol.From("asdf")
//	s3 := symbol.From("qwerty")
//
//	fmt.Println(s1 == s2)               // true  (same canonical allocation)
//	fmt.Println(s1.Addr() == s2.Addr()) // true
//	fmt.Println(s2.Addr() == s3.Addr()) // false
//
//	s4 := symbol.Gensym()
//	fmt.Println(s4) // G#0
//
// # Symbol Identity
//
// Symbol-to-Symbol comparison is identity comparison: two Symbols are
// equal if and only if they reference the same canonical allocation, and
// [Symbol.Compare] orders them by the numeric address of that allocation.
// Address order is a valid total order but is NOT lexicographic and is
// not stable across runs; use it for ordered containers, never for
// human-meaningful sequencing. Symbol-to-string comparison is content
// comparison: [Symbol.EqualText] and [Symbol.CompareText] compare
// characters, so symbol.From("asdf").EqualText("asdf") is true even if
// "asdf" was never interned before.
//
// # Tables
//
// Interning goes through a [Table]: a mutex-guarded, lexicographically
// ordered set of canonical allocations. The package-level functions
// ([From], [FromBytes], [Gensym]) use a process-wide default table, which
// is what most programs want. Construct a private [Table] with [NewTable]
// when interning must be isolated, e.g. in tests or per-compilation-unit
// symbol spaces.
//
// # Concurrency
//
// All Table operations, and therefore all package-level functions, are
// safe for concurrent use from any number of goroutines. Access is
// serialized by one mutex per table; callbacks passed to [Table.Walk] run
// outside the lock and may intern freely.
//
// # Memory Model
//
// Canonical allocations are never freed: each distinct text value
// permanently grows the owning table by the size of the text, exactly
// once. This is a deliberate trade: it is what makes a Symbol's address
// a stable identity for the whole process lifetime, with no ownership
// tracking on the handles. Do not intern unbounded attacker-controlled
// input into the default table.
package symbol
