package trust

import (
	"errors"
	"sync"
)

// Sentinel errors for trust graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a NodeID outside the arena.
	ErrNodeNotFound = errors.New("trust: node not found")

	// ErrEmptyLabel indicates AddNode received an empty label.
	ErrEmptyLabel = errors.New("trust: node label is empty")

	// ErrDuplicateLabel indicates AddNode received a label already in use.
	ErrDuplicateLabel = errors.New("trust: duplicate node label")

	// ErrBadTrust indicates a trust weight outside (0,1].
	ErrBadTrust = errors.New("trust: weight must be in (0,1]")

	// ErrLoopNotAllowed indicates a trust edge from a node to itself.
	ErrLoopNotAllowed = errors.New("trust: self-trust edge not allowed")

	// ErrDuplicateEdge indicates AddTrust was called for a pair that already has an edge.
	ErrDuplicateEdge = errors.New("trust: edge already exists")

	// ErrEdgeNotFound indicates SetTrust or Trust referenced a pair without an edge.
	ErrEdgeNotFound = errors.New("trust: edge not found")

	// ErrBadAttribute indicates a node attribute outside its documented range.
	ErrBadAttribute = errors.New("trust: attribute out of range")

	// ErrInconsistent indicates the edge catalog and the per-node arcs disagree.
	ErrInconsistent = errors.New("trust: edge and arc records disagree")

	// ErrBadState indicates an unknown propagation state value.
	ErrBadState = errors.New("trust: unknown propagation state")
)

// NodeID is the stable arena index of a node.
type NodeID int

// State is the propagation state of a node during a cascade run.
type State uint8

const (
	// Susceptible nodes have not yet been convinced and can be seeded.
	Susceptible State = iota
	// Exposed nodes accepted the content and become infected on the next step.
	Exposed
	// Infected nodes are convinced and actively re-share.
	Infected
	// Resistant nodes stopped sharing and cannot be convinced again.
	Resistant
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Exposed:
		return "exposed"
	case Infected:
		return "infected"
	case Resistant:
		return "resistant"
	default:
		return "unknown"
	}
}

// ParseState maps a lowercase state name back to a State.
func ParseState(s string) (State, error) {
	switch s {
	case "", "susceptible":
		return Susceptible, nil
	case "exposed":
		return Exposed, nil
	case "infected":
		return Infected, nil
	case "resistant":
		return Resistant, nil
	}
	return Susceptible, ErrBadState
}

// Attributes are the continuous personal traits consumed by the acceptance model.
// PoliticalLeaning lies in [-1,1]; every other attribute lies in [0,1].
type Attributes struct {
	PoliticalLeaning        float64 `yaml:"political_leaning" json:"political_leaning" validate:"gte=-1,lte=1"`
	CriticalThinking        float64 `yaml:"critical_thinking" json:"critical_thinking" validate:"gte=0,lte=1"`
	EmotionalSusceptibility float64 `yaml:"emotional_susceptibility" json:"emotional_susceptibility" validate:"gte=0,lte=1"`
	Education               float64 `yaml:"education" json:"education" validate:"gte=0,lte=1"`
	SocialActivity          float64 `yaml:"social_activity" json:"social_activity" validate:"gte=0,lte=1"`
}

// Node is a person in the trust graph.
//
// ID and Label are immutable after insertion. Identity is the identity class
// used by the trust-only path cost (nodes sharing a class trust each other
// more readily); an empty Identity never matches another node.
type Node struct {
	ID       NodeID
	Label    string
	Identity string
	Attrs    Attributes
	State    State
}

// Edge is the single authoritative record of an undirected trust relationship.
// A < B always holds.
type Edge struct {
	A, B  NodeID
	Trust float64
}

// Arc is one endpoint's view of an Edge.
//
// Edge is the index of the record in Edges(); Reverse is true when the arc
// walks the edge from B to A. Together they form a stable per-direction key.
type Arc struct {
	To      NodeID
	Trust   float64
	Edge    int
	Reverse bool
}

// Key returns a stable identifier of this directed arc, unique within the graph.
func (a Arc) Key() uint64 {
	k := uint64(a.Edge) << 1
	if a.Reverse {
		k |= 1
	}
	return k
}

// pairKey identifies an unordered node pair (lo < hi).
type pairKey struct {
	lo, hi NodeID
}

func makePair(u, v NodeID) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("trust: WithCapacity(n<0)")
	}
	return func(g *Graph) {
		g.nodes = make([]Node, 0, n)
		g.arcs = make([][]Arc, 0, n)
		g.labels = make(map[string]NodeID, n)
	}
}

// Graph is the in-memory trust graph.
type Graph struct {
	mu sync.RWMutex

	nodes  []Node
	labels map[string]NodeID

	edges []Edge
	pairs map[pairKey]int // unordered pair → index in edges
	arcs  [][]Arc         // arcs[u] = outgoing views of u's edges, in insertion order
}

// New creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func New(opts ...Option) *Graph {
	g := &Graph{
		labels: make(map[string]NodeID),
		pairs:  make(map[pairKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
