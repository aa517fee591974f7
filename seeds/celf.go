package seeds

import (
	"container/heap"

	"github.com/katalvlaran/influence/trust"
)

// celf runs lazy forward selection.
//
//  1. Every candidate gets gain σ({u}) − σ(∅) = σ({u}), flag 0.
//  2. While |S| < budget: if the heap top's flag equals |S| its gain is
//     current and, by submodularity, no stale gain below it can beat it: take
//     it. Otherwise refresh its gain against S, stamp flag = |S|, re-sift.
func (s *selector) celf(cands []trust.NodeID, budget int) error {
	h := make(gainHeap, 0, len(cands))
	for _, u := range cands {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		t, err := s.evaluate(u, phaseInit)
		if err != nil {
			return err
		}
		h = append(h, &candidate{id: u, gain: t, total: t, prev: none, index: len(h)})
	}
	heap.Init(&h)

	for len(s.seeds) < budget && h.Len() > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		top := h[0]
		if top.flag == len(s.seeds) {
			heap.Pop(&h)
			s.accept(top)
			continue
		}

		t, err := s.evaluate(top.id, phaseLazy)
		if err != nil {
			return err
		}
		top.gain, top.total, top.flag = t-s.total, t, len(s.seeds)
		s.stats.Recomputations++
		heap.Fix(&h, 0)
	}

	return nil
}
