package sat

// propagate drains the BCP queue, returning nil once it reaches a
// quiescent fixpoint or the conflicting clause if one became falsified.
//
// For each popped literal l, every clause watching l.Opposite() (see
// watchIndex's doc comment for the indexing convention) is revisited.
// The watch list is snapshotted into tmpWatchers before the scan because
// propagate on a clause can re-register it into the very list being
// iterated (e.g. when it stays watching the same literal); iterating a
// stable copy while edits land on the live list keeps the loop correct
// without tracking indices by hand.
func (s *Solver) propagate() *Clause {
	for !s.propQueue.IsEmpty() {
		l := s.propQueue.Pop()

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watchIndex.at(l)...)
		s.watchIndex.reset(l)

		for i, w := range s.tmpWatchers {
			s.Stats.Propagations++

			// The guard optimisation: if the clause's other watched
			// literal is already true, the clause cannot possibly need
			// attention, so skip touching it at all.
			if s.LitValue(w.guard) == True {
				s.watchIndex.add(l, w)
				continue
			}

			if w.clause.propagate(s, l) {
				continue
			}

			// w.clause just became empty: restore the watchers that
			// hadn't been scanned yet, drop the rest of the queue (moot,
			// we're about to backtrack), and report the conflict.
			s.watchIndex.addAll(l, s.tmpWatchers[i+1:])
			s.propQueue.Clear()
			return w.clause
		}
	}

	return nil
}
