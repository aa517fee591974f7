package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/trust"
)

// Find searches for the cheapest route from source to target.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrOptionViolation, ErrMissingContent).
//  2. g is non-nil (ErrNilGraph).
//  3. source and target exist (ErrUnknownNode); no search is performed.
//
// On ErrNoPath the returned Result is non-nil with Success=false and Explored
// set to the number of nodes finalized, which is the size of the source's
// connected component.
//
// Find never mutates g.
func Find(g *trust.Graph, source, target trust.NodeID, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(source) {
		return &Result{}, fmt.Errorf("%w: source %d: %w", ErrUnknownNode, source, trust.ErrNodeNotFound)
	}
	if !g.Has(target) {
		return &Result{}, fmt.Errorf("%w: target %d: %w", ErrUnknownNode, target, trust.ErrNodeNotFound)
	}

	c, err := newCoster(g, target, o)
	if err != nil {
		return &Result{}, err
	}
	n := len(c.nodes)
	r := &runner{
		g:       g,
		opts:    o,
		cost:    c,
		source:  source,
		target:  target,
		best:    make([]float64, n),
		prev:    make([]trust.NodeID, n),
		closed:  make([]bool, n),
		settled: make([]bool, n),
		pq:      make(frontier, 0, n),
	}
	res := r.run()

	o.Metrics.ObserveSearch(o.Mode.String(), res.Explored, res.Success)
	o.Logger.Debug("pathfind: search finished",
		zap.String("mode", o.Mode.String()),
		zap.Int("source", int(source)),
		zap.Int("target", int(target)),
		zap.Bool("success", res.Success),
		zap.Float64("cost", res.Cost),
		zap.Int("explored", res.Explored),
		zap.Int("reopened", r.reopened),
	)
	if !res.Success {
		return res, fmt.Errorf("%w: %d→%d after %d nodes", ErrNoPath, source, target, res.Explored)
	}

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *trust.Graph
	opts   Options
	cost   *coster
	source trust.NodeID
	target trust.NodeID

	best     []float64      // best known g per node
	prev     []trust.NodeID // predecessor on the best known route
	closed   []bool         // currently finalized
	settled  []bool         // finalized at least once
	explored int
	reopened int
	seq      uint64
	pq       frontier
	frames   []Frame
}

func (r *runner) push(id trust.NodeID, g float64) {
	r.seq++
	heap.Push(&r.pq, &entry{id: id, g: g, f: g + r.cost.heuristic(id), seq: r.seq})
}

func (r *runner) run() *Result {
	for i := range r.best {
		r.best[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.best[r.source] = 0
	heap.Init(&r.pq)
	r.push(r.source, 0)

	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*entry)
		u := it.id

		// Skip stale duplicates left behind by lazy decrease-key.
		if r.closed[u] || it.g > r.best[u] {
			continue
		}
		r.closed[u] = true
		if !r.settled[u] {
			r.settled[u] = true
			r.explored++
		}
		if u == r.target {
			if r.opts.Frames {
				r.snapshot(u)
			}
			return &Result{
				Success:  true,
				Path:     r.pathTo(u),
				Cost:     r.best[u],
				Explored: r.explored,
				Frames:   r.frames,
			}
		}
		r.expand(u)
		if r.opts.Frames {
			r.snapshot(u)
		}
	}

	return &Result{Explored: r.explored, Frames: r.frames}
}

// expand relaxes every arc out of u.
func (r *runner) expand(u trust.NodeID) {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return // u was validated by the caller's id range
	}
	for _, a := range arcs {
		v := a.To
		ng := r.best[u] + r.cost.edge(u, v, a.Trust)
		if ng >= r.best[v] {
			continue
		}
		r.best[v] = ng
		r.prev[v] = u
		if r.closed[v] {
			r.closed[v] = false
			r.reopened++
		}
		r.push(v, ng)
	}
}

func (r *runner) pathTo(v trust.NodeID) []trust.NodeID {
	var path []trust.NodeID
	for cur := v; cur != -1; cur = r.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner) snapshot(cur trust.NodeID) {
	fr := Frame{Step: len(r.frames), Current: cur, Path: r.pathTo(cur)}
	for _, it := range r.pq {
		if !r.closed[it.id] && it.g <= r.best[it.id] {
			fr.Open = append(fr.Open, Entry{Node: it.id, G: it.g, F: it.f})
		}
	}
	sort.Slice(fr.Open, func(i, j int) bool {
		if fr.Open[i].F != fr.Open[j].F {
			return fr.Open[i].F < fr.Open[j].F
		}
		return fr.Open[i].Node < fr.Open[j].Node
	})
	for id, c := range r.closed {
		if c {
			fr.Closed = append(fr.Closed, trust.NodeID(id))
		}
	}
	r.frames = append(r.frames, fr)
}

// entry is a frontier item. Duplicates for the same node may coexist; only
// the one whose g equals best[id] is live.
type entry struct {
	id  trust.NodeID
	g   float64
	f   float64
	seq uint64
}

// frontier is a min-heap ordered by f, then by insertion sequence.
type frontier []*entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*entry)) }

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
