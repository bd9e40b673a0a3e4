package config

import (
	"time"

	"github.com/rs/zerolog"
)

// QueryContext carries the inputs for evaluating an expression against a
// configuration snapshot.
type QueryContext struct {
	Snapshot map[string]any
	Now      *time.Time
	Args     map[string]any
}

func (ctx QueryContext) withDefaults() QueryContext {
	if ctx.Now == nil {
		now := time.Now()
		ctx.Now = &now
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = map[string]any{}
	}
	return ctx
}

func (ctx QueryContext) timestamp() time.Time {
	ctx = ctx.withDefaults()
	return *ctx.Now
}

// Evaluator executes expressions against a query context.
type Evaluator interface {
	Evaluate(ctx QueryContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx QueryContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Option configures the registry when the singleton is first constructed.
type Option func(*registryConfig)

type registryConfig struct {
	logger    zerolog.Logger
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
	hooks     Hooks
}

func applyOptions(opts []Option) registryConfig {
	cfg := registryConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLogger attaches a structured logger to the registry. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *registryConfig) {
		cfg.logger = logger
	}
}

// WithEvaluator configures the engine used by Evaluate. The expr engine is
// used when none is configured.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *registryConfig) {
		cfg.evaluator = e
	}
}

// WithProgramCache registers a compiled-program cache shared by evaluators.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *registryConfig) {
		cfg.cache = cache
	}
}

// WithFunctionRegistry seeds the function registry exposed to evaluators.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *registryConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithLoadHook appends a hook notified of load-pass events.
func WithLoadHook(hook LoadHook) Option {
	return func(cfg *registryConfig) {
		if hook == nil {
			return
		}
		cfg.hooks = append(cfg.hooks, hook)
	}
}
