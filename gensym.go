package symbol

import "strconv"

// gensymPrefix is the literal prefix of every generated name.
const gensymPrefix = "G#"

// Gensym generates a fresh Symbol from the default table. See
// Table.Gensym.
func Gensym() Symbol {
	return defaultTable.Gensym()
}

// Gensym interns and returns a fresh Symbol whose text is guaranteed not
// to be in use in this table at the moment of return. Names have the
// form "G#n" for a table-scoped counter n that starts at zero and
// advances on every attempt, so generated names are strictly increasing
// and never reused.
//
// If a candidate name was already interned explicitly (someone called
// Symbol with a colliding "G#n" text), that candidate is skipped and the
// next counter value is tried. The table lock is held across the whole
// generate-and-check loop, so no concurrent intern or Gensym can claim a
// candidate between its check and its insertion.
func (t *Table) Gensym() Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		n := t.gensymN
		t.gensymN++
		name := gensymPrefix + strconv.FormatUint(n, 10)
		if t.set.Has(&entry{text: name}) {
			continue
		}
		e := newEntry(name)
		t.set.ReplaceOrInsert(e)
		return Symbol{e: e}
	}
}
