package pathfind

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/trust"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNilGraph indicates a nil *trust.Graph.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrUnknownNode indicates the source or target id is not in the graph.
	ErrUnknownNode = errors.New("pathfind: unknown node")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("pathfind: no path")

	// ErrMissingContent indicates ModeContent was requested without a content item.
	ErrMissingContent = errors.New("pathfind: content-aware mode requires content")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrBadPath indicates Breakdown received a path that is not a chain of edges.
	ErrBadPath = errors.New("pathfind: path is not a chain of trust edges")
)

// Mode selects the cost regime.
type Mode int

const (
	// ModeTrust measures distance by lack of trust, identity and activity.
	ModeTrust Mode = iota
	// ModeContent measures distance by rejection probability of a content item.
	ModeContent
)

// String returns "trust" or "content".
func (m Mode) String() string {
	switch m {
	case ModeTrust:
		return "trust"
	case ModeContent:
		return "content"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "trust" or "content" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "trust", "":
		return ModeTrust, nil
	case "content":
		return ModeContent, nil
	}
	return ModeTrust, fmt.Errorf("%w: mode %q", ErrOptionViolation, s)
}

// HeuristicPolicy selects how heuristic estimates are produced.
type HeuristicPolicy int

const (
	// HeuristicBounded caps the estimate by the cheapest edge into the target.
	HeuristicBounded HeuristicPolicy = iota
	// HeuristicRaw uses the hand-tuned estimate unchanged; paths may be suboptimal.
	HeuristicRaw
)

// ParseHeuristic maps "bounded" or "raw" to a HeuristicPolicy.
func ParseHeuristic(s string) (HeuristicPolicy, error) {
	switch s {
	case "bounded", "":
		return HeuristicBounded, nil
	case "raw":
		return HeuristicRaw, nil
	}
	return HeuristicBounded, fmt.Errorf("%w: heuristic %q", ErrOptionViolation, s)
}

// Options configures a search.
type Options struct {
	Mode      Mode
	Heuristic HeuristicPolicy
	Content   *meme.Attributes
	Frames    bool
	Logger    *zap.Logger
	Metrics   *metrics.Metrics

	err error
}

// Option configures the pathfinder via functional arguments.
type Option func(*Options)

// DefaultOptions returns trust mode, bounded heuristic, no frames, a no-op logger.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeTrust,
		Heuristic: HeuristicBounded,
		Logger:    zap.NewNop(),
	}
}

// WithMode selects the cost regime.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeTrust && m != ModeContent {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithContent supplies the content item for ModeContent.
func WithContent(c meme.Content) Option {
	return func(o *Options) {
		attrs := c.Attributes
		o.Content = &attrs
	}
}

// WithHeuristic selects the heuristic policy.
func WithHeuristic(p HeuristicPolicy) Option {
	return func(o *Options) {
		if p != HeuristicBounded && p != HeuristicRaw {
			o.err = fmt.Errorf("%w: heuristic %d", ErrOptionViolation, int(p))
			return
		}
		o.Heuristic = p
	}
}

// WithFrames records a Frame per iteration in Result.Frames.
func WithFrames() Option {
	return func(o *Options) { o.Frames = true }
}

// WithLogger attaches a structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Mode == ModeContent && o.Content == nil {
		return o, ErrMissingContent
	}

	return o, nil
}

// Result is the outcome of one search.
//
// On failure Success is false, Path is nil and Cost is 0. Explored is the
// number of distinct nodes finalized before the search stopped.
type Result struct {
	Success  bool
	Path     []trust.NodeID
	Cost     float64
	Explored int
	Frames   []Frame
}

// Entry is one frontier item as seen in a Frame.
type Entry struct {
	Node trust.NodeID
	G, F float64
}

// Frame is a diagnostic snapshot taken after a node is finalized and expanded.
type Frame struct {
	Step    int
	Current trust.NodeID
	Open    []Entry        // live frontier entries ordered by (F, Node)
	Closed  []trust.NodeID // finalized nodes, ascending
	Path    []trust.NodeID // best known path from source to Current
}
