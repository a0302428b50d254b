package dcg

import (
	"github.com/google/uuid"

	"github.com/yesoreyeram/dcgo/pkg/config"
	"github.com/yesoreyeram/dcgo/pkg/logging"
	"github.com/yesoreyeram/dcgo/pkg/observer"
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
	"github.com/yesoreyeram/dcgo/pkg/telemetry"
)

// Engine owns a single node store and the frame stack, path, and identity
// policy needed to evaluate cells, thunks, and their dependents.
//
// An Engine is not safe for concurrent use: the data model is single
// threaded and strictly nested (see package doc). Calling any exported
// method from more than one goroutine, or calling back into the engine
// concurrently from inside a producer, is undefined.
type Engine struct {
	st  *store.Store
	cfg *config.Config

	stack           []*frame
	path            symbol.Path
	structuralDepth int

	instanceID uuid.UUID
	logger     *logging.Logger
	obs        *observer.Manager
	telemetry  *telemetry.Provider

	counters Counters
}

// Handle is an opaque reference returned by Cell and Thunk and consumed by
// Set and Force. Handles are only meaningful against the Engine that
// produced them.
//
// Most handles are located: they name a position in the node store. An
// eager handle instead carries its value directly and names no location
// at all — ThunkEager constructs one, and Force recognizes it and returns
// the carried value without ever touching the store.
type Handle struct {
	loc   symbol.Location
	eager bool
	value store.Value
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig attaches cfg to the engine. Without this option the engine
// uses config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger attaches a structured logger. Without this option the engine
// builds one from its config via logging.New.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithObserverManager attaches an observer manager, allowing a caller to
// register observers before any operation runs.
func WithObserverManager(m *observer.Manager) Option {
	return func(e *Engine) { e.obs = m }
}

// WithTelemetry attaches a telemetry provider that Force uses to record
// force durations. Evaluation, change-propagation and dirtying metrics
// are not recorded through it; they are recorded only by a
// telemetry.TelemetryObserver registered on the observer manager.
func WithTelemetry(p *telemetry.Provider) Option {
	return func(e *Engine) { e.telemetry = p }
}

// WithInstanceID overrides the engine's correlation identifier. Without
// this option a random UUID is generated.
func WithInstanceID(id uuid.UUID) Option {
	return func(e *Engine) { e.instanceID = id }
}

// New constructs an Engine ready to accept Cell/Thunk allocations.
func New(opts ...Option) *Engine {
	e := &Engine{
		st:         store.New(),
		cfg:        config.Default(),
		path:       symbol.RootPath(),
		instanceID: uuid.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.New(logging.Config{
			Level:  e.cfg.LogLevel,
			Pretty: e.cfg.LogPretty,
		})
	}
	if e.obs == nil {
		e.obs = observer.NewManager()
	}
	e.logger = e.logger.WithInstanceID(e.instanceID.String())
	return e
}

// locationFor resolves name to the Location it allocates under the
// engine's current identity policy: Nominal unless forced structural by
// either the IgnoreNominalUseStructural flag or an active Structural
// scope, in which case callers compute a content hash themselves and call
// structuralLocation instead.
func (e *Engine) locationFor(name symbol.Name) symbol.Location {
	path := e.path.Push(name)
	id := symbol.Nominal(name)
	return symbol.NewLocation(path, id)
}

// structuralLocation builds the Location for a hash-consed allocation:
// the path identifies where in the call tree the allocation happened,
// the identity is derived purely from contentHash so that two calls with
// the same path and content hash collide on the same node.
func (e *Engine) structuralLocation(contentHash uint64) symbol.Location {
	id := symbol.Structural(contentHash)
	return symbol.NewLocation(e.path, id)
}

// InstanceID returns the engine's correlation identifier, included in log
// records and used as a telemetry resource attribute.
func (e *Engine) InstanceID() uuid.UUID { return e.instanceID }

// Store exposes the underlying node store for read-only diagnostic use
// (wellformed.Check, wellformed.Dump, the /dcg HTTP handler). Callers
// must not mutate nodes returned by Range.
func (e *Engine) Store() *store.Store { return e.st }

// Config returns the engine's active configuration.
func (e *Engine) Config() *config.Config { return e.cfg }
