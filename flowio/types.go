package flowio

import "errors"

var (
	// ErrBadLine marks a non-comment line that does not split into exactly
	// three whitespace-separated fields.
	ErrBadLine = errors.New("flowio: malformed line")

	// ErrBadCapacity marks a capacity field that is not a non-negative
	// base-10 integer.
	ErrBadCapacity = errors.New("flowio: bad capacity")

	// ErrSourceNotFound is returned when no edge mentions the source label.
	ErrSourceNotFound = errors.New("flowio: source label not found")

	// ErrSinkNotFound is returned when no edge mentions the sink label.
	ErrSinkNotFound = errors.New("flowio: sink label not found")
)

const (
	defaultSourceLabel = "s"
	defaultSinkLabel   = "t"
)

// Options configures parsing. Build it with DefaultOptions (strict mode,
// labels "s"/"t"); the zero value has no labels set.
type Options struct {
	// SourceLabel / SinkLabel name the terminal nodes in the input.
	SourceLabel string
	SinkLabel   string

	// Tolerant downgrades per-line parse failures (ErrBadLine,
	// ErrBadCapacity) to skips. Missing source/sink still fail.
	Tolerant bool

	// OnSkip observes every line dropped in tolerant mode.
	// Ignored when nil or when Tolerant is false.
	OnSkip func(lineNo int, line string, err error)
}

// Option mutates Options (functional-options pattern).
type Option func(*Options)

// DefaultOptions returns strict parsing with the canonical "s"/"t" labels.
func DefaultOptions() Options {
	return Options{
		SourceLabel: defaultSourceLabel,
		SinkLabel:   defaultSinkLabel,
	}
}

// WithSourceLabel overrides the label that marks the source node.
// Panics on an empty label: a silent no-op here hides data corruption.
func WithSourceLabel(label string) Option {
	if label == "" {
		panic("flowio: WithSourceLabel requires a non-empty label")
	}
	return func(o *Options) { o.SourceLabel = label }
}

// WithSinkLabel overrides the label that marks the sink node.
// Panics on an empty label.
func WithSinkLabel(label string) Option {
	if label == "" {
		panic("flowio: WithSinkLabel requires a non-empty label")
	}
	return func(o *Options) { o.SinkLabel = label }
}

// WithTolerant enables skip-don't-fail handling of malformed lines.
func WithTolerant() Option {
	return func(o *Options) { o.Tolerant = true }
}

// WithOnSkip registers an observer for lines dropped in tolerant mode.
// Panics on nil to fail fast at configuration time.
func WithOnSkip(fn func(lineNo int, line string, err error)) Option {
	if fn == nil {
		panic("flowio: WithOnSkip requires a non-nil callback")
	}
	return func(o *Options) { o.OnSkip = fn }
}

// resolveOptions folds opts over DefaultOptions.
func resolveOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
