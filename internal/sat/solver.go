package sat

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// State names the Solver's position in its search state machine: FRESH
// before any search has started, SEARCHING while deciding/propagating,
// CONFLICT while a conflict is being analysed, and the terminal SAT/UNSAT.
type State int

const (
	StateFresh State = iota
	StateSearching
	StateConflict
	StateSat
	StateUnsat
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateSearching:
		return "searching"
	case StateConflict:
		return "conflict"
	case StateSat:
		return "sat"
	case StateUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Stats accumulates search statistics: decisions, propagations,
// conflicts, restarts, and how many learned clauses of length >= 2 were
// recorded and their total literal count (cumulative: clauses later
// dropped by reduceDB are still counted).
type Stats struct {
	Decisions       int64
	Propagations    int64
	Conflicts       int64
	Restarts        int64
	LearnedClauses  int64
	LearnedLiterals int64
}

// Solver is a CDCL SAT solver. All of its state — the clause database,
// the trail, the watch index, the decision heuristic — is owned
// exclusively by this instance and mutated only through its methods;
// there is no global mutable state anywhere in the package.
type Solver struct {
	// Clause database. Original (problem) clauses and learnt clauses are
	// tracked separately so that only the latter are eligible for
	// reduceDB, and so NumConstraints/NumLearnts can report each count.
	constraints []*Clause
	learnts     []*Clause
	clauseInc   float64
	clauseDecay float64

	order *VarOrder

	watchIndex watchIndex
	propQueue  *Queue[Literal]

	// assigns is indexed directly by literal (dense 2*var+sign index),
	// giving O(1) value lookup for either polarity without branching.
	assigns []LBool

	trail    []Literal
	trailLim []int
	reason   []*Clause
	level    []int

	// trivUnsat is set once an empty clause is added, a unit clause
	// contradicts an earlier level-0 fact, or a search ends in a level-0
	// conflict. Once set, Solve short-circuits to UNSAT without touching
	// the trail.
	trivUnsat bool

	state State

	Stats Stats

	// Restart controller: the (inner, outer, limit) triple from spec
	// §4.7, grounded in original_source/src/solver.rs.
	restartInner int
	restartOuter int
	restartLimit int

	// Models accumulates one satisfying assignment per successful Solve
	// call, in the order the variables were declared.
	Models [][]bool

	seenVar *ResetSet

	// Scratch buffers reused across calls to avoid reallocating on every
	// conflict: tmpWatchers snapshots a watch list being scanned (see
	// propagate), tmpLearnts accumulates the literals of the clause under
	// construction in analyze.
	tmpWatchers []watcher
	tmpLearnts  []Literal

	log logrus.FieldLogger
}

// Options configures a new Solver.
type Options struct {
	ClauseDecay float64
	// Logger, if non-nil, receives trace-level entries at decision,
	// conflict, and restart boundaries. Left nil, logging costs nothing.
	Logger logrus.FieldLogger
}

// DefaultOptions is a reasonable set of defaults for most instances.
var DefaultOptions = Options{
	ClauseDecay: 0.999,
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewSolver returns a new, empty Solver ready to accept variables and
// clauses via AddVariable/AddClause.
func NewSolver(opts Options) *Solver {
	decay := opts.ClauseDecay
	if decay == 0 {
		decay = DefaultOptions.ClauseDecay
	}
	return &Solver{
		clauseDecay:  decay,
		clauseInc:    1,
		order:        NewVarOrder(),
		propQueue:    NewQueue[Literal](128),
		seenVar:      &ResetSet{},
		restartInner: 100,
		restartOuter: 100,
		restartLimit: 100,
		log:          opts.Logger,
		state:        StateFresh,
	}
}

func (s *Solver) State() State { return s.state }

// NumVariables returns the number of declared variables.
func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

func (s *Solver) NumAssigns() int { return len(s.trail) }

func (s *Solver) NumConstraints() int { return len(s.constraints) }

func (s *Solver) NumLearnts() int { return len(s.learnts) }

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool {
	return s.assigns[PositiveLiteral(v)]
}

// LitValue returns the current value of literal l (i.e. accounting for
// its sign).
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// AddVariable declares a new variable and returns its ID. Variables are
// numbered sequentially from 0 in declaration order and are never
// destroyed.
func (s *Solver) AddVariable() int {
	v := s.NumVariables()

	s.watchIndex.grow()
	s.reason = append(s.reason, nil)
	s.level = append(s.level, -1)
	s.seenVar.Grow()

	s.assigns = append(s.assigns, Unknown, Unknown)

	s.order.AddVar()
	return v
}

// AddClause adds an original (problem) clause. It may only be called at
// decision level 0 (before or between searches, never mid-conflict).
//
// An empty clause marks the whole problem as trivially UNSAT rather than
// returning an error: it's reported as UNSAT to callers through Solve
// rather than surfaced as a Go error. A single-literal clause is not
// stored at all: it is enqueued
// directly as a level-0 fact with no reason, since a root-level unit can
// never be the subject of conflict analysis above level 0.
func (s *Solver) AddClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}

	c := newClause(literals, false)
	s.order.NewClause(c.literals)

	switch c.Len() {
	case 0:
		s.trivUnsat = true
	case 1:
		if !s.enqueue(c.literals[0], nil) {
			s.trivUnsat = true
		}
	default:
		s.constraints = append(s.constraints, c)
		s.watchIndex.add(c.literals[0].Opposite(), watcher{clause: c, guard: c.literals[1]})
		s.watchIndex.add(c.literals[1].Opposite(), watcher{clause: c, guard: c.literals[0]})
	}

	return nil
}

func (s *Solver) decisionLevel() int { return len(s.trailLim) }

// Solve runs CDCL search to completion (SAT or UNSAT) and returns the
// result. It implements the top-level loop of spec §4.8: an initial BCP
// pass, then decide/propagate/analyse/learn/backtrack/restart until
// either every variable is assigned (SAT) or a conflict survives to
// level 0 (UNSAT).
func (s *Solver) Solve() LBool {
	if s.trivUnsat {
		s.state = StateUnsat
		return False
	}

	s.state = StateSearching
	if conflict := s.propagate(); conflict != nil {
		s.trivUnsat = true
		s.state = StateUnsat
		return False
	}

	for {
		if s.shouldRestart() {
			s.restart()
			continue
		}

		lit, ok := s.order.NextDecision(s)
		if !ok {
			s.saveModel()
			s.state = StateSat
			return True
		}

		s.Stats.Decisions++
		s.assume(lit)
		s.logTrace("decide", lit)

		for {
			conflict := s.propagate()
			if conflict == nil {
				break
			}

			s.state = StateConflict
			s.Stats.Conflicts++

			if s.decisionLevel() == 0 {
				s.trivUnsat = true
				s.state = StateUnsat
				return False
			}

			learned, backtrackLevel := s.analyze(conflict)
			s.logTrace("conflict", conflict)
			s.cancelUntil(backtrackLevel)
			s.record(learned)

			s.decayClauseActivity()

			if s.NumLearnts()-s.NumAssigns() >= s.NumConstraints()/3+10 {
				s.reduceDB()
			}

			s.state = StateSearching
		}
	}
}

// record installs a freshly learned clause: it is added to the clause
// database and watched, then its asserting literal is enqueued. Per spec
// §4.8, watches for a clause of length >= 2 go on the asserting literal
// and the literal at the next-highest decision level (newClause sorts, so
// both are positioned here: the asserting literal, literals[0] of the
// input, back into slot 0, and the highest-level literal among [1:] into
// slot 1). A unit learned clause is neither watched nor added to the
// learnt list: its literal is enqueued at the backjump level, which is
// then 0, with the clause as its reason.
func (s *Solver) record(literals []Literal) {
	c := newClause(literals, true)
	for i, l := range c.literals {
		if l == literals[0] {
			c.literals[0], c.literals[i] = c.literals[i], c.literals[0]
			break
		}
	}

	if c.Len() >= 2 {
		maxLevel, pos := -1, 1
		for i := 1; i < len(c.literals); i++ {
			if lvl := s.level[c.literals[i].VarID()]; lvl > maxLevel {
				maxLevel = lvl
				pos = i
			}
		}
		c.literals[1], c.literals[pos] = c.literals[pos], c.literals[1]

		s.watchIndex.add(c.literals[0].Opposite(), watcher{clause: c, guard: c.literals[1]})
		s.watchIndex.add(c.literals[1].Opposite(), watcher{clause: c, guard: c.literals[0]})
		s.learnts = append(s.learnts, c)
		s.Stats.LearnedClauses++
		s.Stats.LearnedLiterals += int64(c.Len())
	}

	s.enqueue(c.literals[0], c)
}

// decayClauseActivity ages the clause-activity increment used by
// reduceDB, giving more weight to clauses involved in recent conflicts.
func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}

func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, l := range s.learnts {
			l.activity *= 1e-100
		}
	}
}

// reduceDB discards the least active half of the learned clauses that
// are not currently locked (serving as some variable's reason).
// Learned-clause deletion is optional for correctness but keeps the
// clause database from growing without bound on long-running searches.
func (s *Solver) reduceDB() {
	if len(s.learnts) == 0 {
		return
	}

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.learnts[i].activity < s.learnts[j].activity
	})

	j := 0
	half := len(s.learnts) / 2
	for i, c := range s.learnts {
		if i < half && !s.locked(c) {
			s.removeClause(c)
			continue
		}
		s.learnts[j] = c
		j++
	}
	s.learnts = s.learnts[:j]
}

// locked reports whether c is currently the reason for its first
// literal's assignment, meaning it cannot be deleted without corrupting
// the implication graph.
func (s *Solver) locked(c *Clause) bool {
	return s.reason[c.literals[0].VarID()] == c
}

func (s *Solver) removeClause(c *Clause) {
	s.watchIndex.remove(c.literals[0].Opposite(), c)
	s.watchIndex.remove(c.literals[1].Opposite(), c)
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for v := range model {
		lb := s.VarValue(v)
		if lb == Unknown {
			panic("sat: saveModel called with an incomplete assignment")
		}
		model[v] = lb == True
	}
	s.Models = append(s.Models, model)
}

func (s *Solver) logTrace(event string, v fmt.Stringer) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"event": event,
		"level": s.decisionLevel(),
	}).Trace(v.String())
}
