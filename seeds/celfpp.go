package seeds

import (
	"container/heap"

	"github.com/katalvlaran/influence/trust"
)

// celfpp runs CELF with a one-step look-ahead (Goyal, Lu, Lakshmanan 2011).
//
// best is cur_best: the candidate with the largest current gain among those
// refreshed in this round (flag == |S|). It resets whenever a seed is taken.
// last is the most recently taken seed.
//
// When u is refreshed and best is known, one pass also yields
// mg2 = σ(S ∪ {best, u}) − σ(S ∪ {best}); σ(S ∪ {best}) is best.total. If best
// is taken next, u's gain against the new S is exactly mg2.
func (s *selector) celfpp(cands []trust.NodeID, budget int) error {
	var best *candidate
	h := make(gainHeap, 0, len(cands))
	for _, u := range cands {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		c := &candidate{id: u, prev: none, index: len(h)}
		if err := s.refresh(c, best, phaseInit); err != nil {
			return err
		}
		if best == nil || better(c, best) {
			best = c
		}
		h = append(h, c)
	}
	heap.Init(&h)

	best = nil
	last := none
	for len(s.seeds) < budget && h.Len() > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		top := h[0]
		k := len(s.seeds)
		if top.flag == k {
			heap.Pop(&h)
			s.accept(top)
			last, best = top.id, nil
			continue
		}

		if top.prev != none && top.prev == last && top.flag == k-1 {
			top.gain, top.total = top.gain2, top.total2
			top.flag = k
			s.stats.LookaheadHits++
			s.opts.Metrics.ObserveLookaheadHit()
		} else if err := s.refresh(top, best, phaseLazy); err != nil {
			return err
		}
		s.stats.Recomputations++
		if best == nil || better(top, best) {
			best = top
		}
		heap.Fix(&h, 0)
	}

	return nil
}

// refresh recomputes c's gain against S and, when best is another node,
// its look-ahead gain against S ∪ {best}.
func (s *selector) refresh(c, best *candidate, phase string) error {
	c.flag = len(s.seeds)
	if best == nil || best == c {
		t, err := s.evaluate(c.id, phase)
		if err != nil {
			return err
		}
		c.gain, c.total, c.prev = t-s.total, t, none
		return nil
	}

	t, t2, err := s.evaluateAhead(c.id, best.id, phase)
	if err != nil {
		return err
	}
	c.gain, c.total = t-s.total, t
	c.prev, c.total2, c.gain2 = best.id, t2, t2-best.total

	return nil
}
