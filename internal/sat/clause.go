package sat

import (
	"sort"
	"strings"
)

// Clause is an ordered, deduplicated sequence of literals. Positions 0
// and 1 are always the two watched slots: for clauses of length >= 2 the
// solver maintains the invariant that at least one of literals[0],
// literals[1] is satisfied or unassigned unless the clause is the active
// conflict or a pending unit; for unit clauses both slots are position 0.
//
// Membership never changes after construction (construct only sorts and
// deduplicates); only the contents of the two watched positions move,
// swapped in place as propagate finds new literals to watch.
type Clause struct {
	literals []Literal

	// learnt distinguishes clauses derived by conflict analysis from the
	// clauses of the original formula. Only learnt clauses are eligible
	// for deletion by reduceDB.
	learnt bool

	// activity estimates how useful this learnt clause has been in
	// recent conflicts; bumped on participation in conflict analysis and
	// used by reduceDB to decide what to keep.
	activity float64
}

// newClause builds a Clause from literals, sorting and deduplicating
// exact duplicates. It performs no assignment-aware simplification (e.g.
// tautologies such as [x, !x] are kept as-is): the watched-literal scheme
// handles them correctly without special-casing, since a tautological
// clause can never become the unique falsified clause.
func newClause(literals []Literal, learnt bool) *Clause {
	lits := append([]Literal(nil), literals...)
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	k := 0
	for i, l := range lits {
		if i > 0 && l == lits[i-1] {
			continue
		}
		lits[k] = l
		k++
	}
	lits = lits[:k]

	return &Clause{literals: lits, learnt: learnt}
}

// Len returns the number of (deduplicated) literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Literals returns the clause's literals. Callers must not retain or
// mutate the returned slice across a propagate call, since propagate
// swaps elements at positions 0 and 1 in place.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// propagate is invoked when l, one of the clause's two watched literals'
// negation, has just been assigned true (equivalently: the literal the
// clause was watching, l.Opposite(), has just become false). It restores
// the watched-literal invariant or drives a new assignment:
//
//   - if the clause's other watched literal is already true, the clause
//     is satisfied; re-register under l and return (no change needed).
//   - otherwise scan positions >= 2 for a literal that is not false. If
//     one is found, swap it into the freed slot, re-register the watch
//     under its negation, and return.
//   - if none is found the clause is unit on its other watched literal:
//     re-register under l and attempt to assign that literal, returning
//     false on conflict (the literal was already falsified).
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}
	// literals[1] == opp: the slot that just became false.

	if s.LitValue(c.literals[0]) == True {
		s.watchIndex.add(l, watcher{clause: c, guard: c.literals[0]})
		return true
	}

	for i := 2; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			s.watchIndex.add(c.literals[1].Opposite(), watcher{clause: c, guard: c.literals[0]})
			return true
		}
	}

	s.watchIndex.add(l, watcher{clause: c, guard: c.literals[0]})
	return s.enqueue(c.literals[0], c)
}

// Resolve performs the resolution of a and b over pivot's variable,
// returning the deduplicated, sorted union of both literal sets minus
// any literal over that variable. Conflict analysis itself inlines an
// equivalent computation over a reused scratch buffer rather than
// allocating intermediate clauses for every resolution step (see
// Solver.analyze); this standalone form exists for callers that want
// the set-level operation directly.
func Resolve(a, b []Literal, pivot int) []Literal {
	out := make([]Literal, 0, len(a)+len(b))
	for _, l := range a {
		if l.VarID() != pivot {
			out = append(out, l)
		}
	}
	for _, l := range b {
		if l.VarID() != pivot {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	k := 0
	for i, l := range out {
		if i > 0 && l == out[i-1] {
			continue
		}
		out[k] = l
		k++
	}
	return out[:k]
}

// explainConflict returns the literals that, negated, caused this clause
// to become entirely false. Every literal of a falsified clause is false,
// so its negation is the assignment responsible for that falsity.
func (c *Clause) explainConflict() []Literal {
	exp := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		exp[i] = l.Opposite()
	}
	return exp
}

// explainAssign returns the literals that forced literals[0] (this
// clause's reason, by invariant 2) to its value: every other literal in
// the clause, negated.
func (c *Clause) explainAssign() []Literal {
	exp := make([]Literal, len(c.literals)-1)
	for i, l := range c.literals[1:] {
		exp[i] = l.Opposite()
	}
	return exp
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
