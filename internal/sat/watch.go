package sat

// watcher is one entry of a literal's watch list: a clause that needs to
// be revisited when the literal becomes true, plus a guard literal.
//
// The guard is the clause's other watched literal. If the guard is
// already true the clause is satisfied and there is nothing to do; the
// BCP loop checks the guard before touching the clause at all, which
// avoids dereferencing (and cache-missing on) clauses that can't
// possibly need attention. This is a pure performance optimisation: it
// changes the order in which clauses get inspected but not the result.
type watcher struct {
	clause *Clause
	guard  Literal
}

// watchIndex maps each literal to the clauses currently watching its
// negation.
//
// A clause is watched by the negation of each watched literal: a clause
// watching literal W is stored under key W.Opposite(), so that when a
// literal L is assigned true the clauses that must be revisited (those
// whose watched literal, ¬L, just became false) are found in a single
// O(1) lookup at index(L) rather than requiring the caller to negate
// first.
type watchIndex struct {
	lists [][]watcher
}

// grow adds the two watch lists (one per sign) for a freshly declared
// variable.
func (w *watchIndex) grow() {
	w.lists = append(w.lists, nil, nil)
}

// at returns the clauses currently watching l's negation (see doc above).
func (w *watchIndex) at(l Literal) []watcher {
	return w.lists[l]
}

// add registers watcher ww under l.
func (w *watchIndex) add(l Literal, ww watcher) {
	w.lists[l] = append(w.lists[l], ww)
}

// reset empties l's list in place, keeping its backing array. It returns
// nothing: callers snapshot the list (via at) before resetting it.
func (w *watchIndex) reset(l Literal) {
	w.lists[l] = w.lists[l][:0]
}

// addAll appends a batch of watchers to l's list, used to restore the
// unprocessed tail of a snapshot when propagation hits a conflict.
func (w *watchIndex) addAll(l Literal, ws []watcher) {
	w.lists[l] = append(w.lists[l], ws...)
}

// remove drops every watcher referencing c from l's list. Used only when
// a clause is deleted outright (reduceDB); the hot propagation path never
// needs a targeted removal since propagate always re-registers a clause
// under whichever literal it ends up watching.
func (w *watchIndex) remove(l Literal, c *Clause) {
	list := w.lists[l]
	j := 0
	for i := 0; i < len(list); i++ {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	w.lists[l] = list[:j]
}
