package seeds

import "github.com/katalvlaran/influence/trust"

// none marks a missing node reference.
const none trust.NodeID = -1

// candidate is one heap entry. Gains and totals are integer sums over all
// simulation runs.
type candidate struct {
	id    trust.NodeID
	gain  int64 // mg1: σ(S ∪ {id}) − σ(S) for |S| == flag
	total int64 // σ(S ∪ {id}) for |S| == flag
	flag  int   // seed count when gain was computed

	// look-ahead (CELF++)
	prev   trust.NodeID // cur_best when gain was computed
	gain2  int64        // σ(S ∪ {prev, id}) − σ(S ∪ {prev})
	total2 int64        // σ(S ∪ {prev, id})

	index int
}

// better orders by gain descending, then NodeID ascending.
func better(a, b *candidate) bool {
	if a.gain != b.gain {
		return a.gain > b.gain
	}
	return a.id < b.id
}

// gainHeap is a max-heap of candidates under better.
type gainHeap []*candidate

func (h gainHeap) Len() int           { return len(h) }
func (h gainHeap) Less(i, j int) bool { return better(h[i], h[j]) }

func (h gainHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *gainHeap) Push(x any) {
	c := x.(*candidate)
	c.index = len(*h)
	*h = append(*h, c)
}

func (h *gainHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*h = old[:n-1]

	return c
}
