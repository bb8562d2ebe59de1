package symbol

import radix "github.com/armon/go-radix"

// TrieKey returns the Symbol's text as an ordered byte sequence suitable
// for keying prefix-tree containers. The bytes sort in the same order as
// the text.
func (s Symbol) TrieKey() []byte {
	return []byte(s.Text())
}

// Trie is a prefix-tree container keyed by Symbol text. It adapts a
// radix tree to Symbol keys so callers can do ordered prefix queries
// over interned names (e.g. completing identifiers in a REPL).
//
// The zero Trie is not usable; construct with NewTrie. A Trie is not
// safe for concurrent use.
type Trie struct {
	tree *radix.Tree
}

// trieEntry keeps the key Symbol next to the stored value so walks can
// hand back the identical handle that was inserted, whatever table it
// came from.
type trieEntry struct {
	sym Symbol
	val any
}

// NewTrie returns a new, empty Trie.
func NewTrie() *Trie {
	return &Trie{tree: radix.New()}
}

// Insert stores v under s, returning the previous value and whether one
// was replaced. Two Symbols with equal text share a slot even when their
// identities differ.
func (t *Trie) Insert(s Symbol, v any) (any, bool) {
	old, ok := t.tree.Insert(s.Text(), trieEntry{sym: s, val: v})
	if !ok {
		return nil, false
	}
	return old.(trieEntry).val, true
}

// Get returns the value stored under s, if any.
func (t *Trie) Get(s Symbol) (any, bool) {
	e, ok := t.tree.Get(s.Text())
	if !ok {
		return nil, false
	}
	return e.(trieEntry).val, true
}

// Delete removes the value stored under s, returning it and whether it
// existed.
func (t *Trie) Delete(s Symbol) (any, bool) {
	e, ok := t.tree.Delete(s.Text())
	if !ok {
		return nil, false
	}
	return e.(trieEntry).val, true
}

// WalkPrefix calls fn for every stored entry whose key begins with
// prefix, in lexicographic key order, stopping early if fn returns
// false. fn receives the Symbol that was inserted.
func (t *Trie) WalkPrefix(prefix string, fn func(s Symbol, v any) bool) {
	t.tree.WalkPrefix(prefix, func(key string, v any) bool {
		e := v.(trieEntry)
		return !fn(e.sym, e.val)
	})
}

// Len returns the number of entries stored in the Trie.
func (t *Trie) Len() int {
	return t.tree.Len()
}
