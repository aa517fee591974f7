package seeds

import "github.com/katalvlaran/influence/trust"

// greedy re-evaluates every remaining candidate in every round and takes the
// best. It shares the tie-break of the lazy variants.
func (s *selector) greedy(cands []trust.NodeID, budget int) error {
	remaining := append([]trust.NodeID{}, cands...)
	for round := 0; round < budget; round++ {
		phase := phaseLazy
		if round == 0 {
			phase = phaseInit
		}
		var top *candidate
		at := -1
		for i, u := range remaining {
			if err := s.ctx.Err(); err != nil {
				return err
			}
			t, err := s.evaluate(u, phase)
			if err != nil {
				return err
			}
			c := &candidate{id: u, gain: t - s.total, total: t, flag: round, prev: none}
			if top == nil || better(c, top) {
				top, at = c, i
			}
		}
		s.accept(top)
		remaining = append(remaining[:at], remaining[at+1:]...)
	}

	return nil
}
