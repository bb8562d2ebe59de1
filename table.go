package symbol

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/btree"
)

// entry is the canonical allocation backing every Symbol with the same
// text. Entries are inserted into a table once and never removed, so a
// pointer to an entry is a stable identity for the process lifetime.
type entry struct {
	text string
	hash uint64
}

func newEntry(text string) *entry {
	return &entry{text: text, hash: xxhash.Sum64String(text)}
}

// btreeDegree matches the default used elsewhere for small-key in-memory
// trees; interning workloads are read-heavy and keys are short.
const btreeDegree = 32

// Table is an intern table: a mutex-guarded set of canonical string
// allocations, ordered lexicographically by text. For any text value at
// most one allocation exists in a table, so interning is idempotent and
// the Symbols it returns support pointer-identity equality.
//
// The zero Table is not usable; construct with NewTable. All methods are
// safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	set     *btree.BTreeG[*entry]
	gensymN uint64
}

// NewTable returns a new, empty intern table with its gensym counter at
// zero. Symbols interned through different tables never compare equal,
// even for identical text.
func NewTable() *Table {
	return &Table{
		set: btree.NewG(btreeDegree, func(a, b *entry) bool {
			return a.text < b.text
		}),
	}
}

// defaultTable is the process-wide table behind the package-level API.
var defaultTable = NewTable()

// DefaultTable returns the process-wide table used by From, FromBytes,
// and Gensym.
func DefaultTable() *Table {
	return defaultTable
}

// Symbol interns text and returns its Symbol. If equal text was interned
// before, from any goroutine, the returned Symbol references the same
// canonical allocation; otherwise a new allocation is created and kept
// for the remainder of the process.
func (t *Table) Symbol(text string) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Symbol{e: t.intern(text)}
}

// SymbolBytes interns the contents of b. It is equivalent to
// t.Symbol(string(b)); no reference to b is retained.
func (t *Table) SymbolBytes(b []byte) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Symbol{e: t.intern(string(b))}
}

// intern implements check-and-insert. Callers must hold t.mu.
func (t *Table) intern(text string) *entry {
	if e, ok := t.set.Get(&entry{text: text}); ok {
		return e
	}
	e := newEntry(text)
	t.set.ReplaceOrInsert(e)
	return e
}

// Contains reports whether text is already interned, without interning
// it.
func (t *Table) Contains(text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.set.Has(&entry{text: text})
}

// Len returns the number of distinct texts interned so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.set.Len()
}

// Walk calls fn for every interned Symbol in lexicographic text order,
// stopping early if fn returns false. fn observes a snapshot of the
// table taken when Walk is called and runs outside the table lock, so it
// may intern; Symbols interned after Walk starts are not visited.
func (t *Table) Walk(fn func(Symbol) bool) {
	t.mu.Lock()
	snap := t.set.Clone()
	t.mu.Unlock()
	snap.Ascend(func(e *entry) bool {
		return fn(Symbol{e: e})
	})
}
