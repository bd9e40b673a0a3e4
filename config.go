// Package config implements the override mechanism for the toolchain's
// build and test configuration. Built-in defaults are registered on a
// process-wide registry, then site or project customize scripts replace any
// subset of them. Scripts are ordinary JavaScript files; every top-level
// var or function they define becomes a configuration attribute.
package config

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Attribute is one named configuration entry together with its metadata.
type Attribute struct {
	Name        string
	Value       Value
	Description string
	// Default tracks the most recent write. After overrides run it mirrors
	// Value rather than the original built-in default; the documentation
	// tables display it as-is.
	Default Value
	// Builtin is the first value ever registered under the name. It is
	// never overwritten by later merges.
	Builtin Value
}

// Behavior is a documented callable attached to the configuration. Each
// behavior supplies its own name, parameter list and help text, so the
// documentation renderer never needs to introspect the callable itself.
type Behavior struct {
	Name   string
	Params string
	Doc    string
	Fn     Function
}

// Registry holds the live configuration attributes for the process. The one
// instance is obtained through Instance or Load; it is not safe for
// concurrent use and is not meant to be.
type Registry struct {
	logger    zerolog.Logger
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
	hooks     Hooks

	attrs     map[string]*Attribute
	order     []string
	behaviors []*Behavior
	byName    map[string]*Behavior
	traces    map[string]*Trace
	loaded    bool
}

var (
	instanceMu sync.Mutex
	instance   *Registry
)

// Instance returns the process-wide registry, constructing it with the
// built-in defaults on first call. Options apply only when the instance is
// created; later calls return the same object unchanged.
func Instance(opts ...Option) *Registry {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = newRegistry(opts...)
	}
	return instance
}

// Reset discards the singleton so the next Instance call rebuilds it.
// Exposed for test harnesses only.
func Reset() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}

func newRegistry(opts ...Option) *Registry {
	cfg := applyOptions(opts)
	r := &Registry{
		logger:    cfg.logger,
		evaluator: cfg.evaluator,
		cache:     cfg.cache,
		functions: cfg.functions,
		hooks:     cfg.hooks,
		attrs:     make(map[string]*Attribute),
		byName:    make(map[string]*Behavior),
		traces:    make(map[string]*Trace),
	}
	if r.functions == nil {
		r.functions = NewFunctionRegistry()
	}
	registerDefaults(r)
	return r
}

// Load obtains the singleton and applies the override scripts found under
// path. Options apply only if this call constructs the instance.
func Load(path string, opts ...Option) (*Registry, error) {
	r := Instance(opts...)
	if err := r.Load(path); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadDefaults loads the conventional customize tree under srcRoot.
func LoadDefaults(srcRoot string, opts ...Option) (*Registry, error) {
	return Load(DefaultCustomizePath(srcRoot), opts...)
}

// DefaultCustomizePath returns the well-known override location beneath a
// source root.
func DefaultCustomizePath(srcRoot string) string {
	return filepath.Join(srcRoot, "cime_config", "customize")
}

// Load discovers override scripts under path and applies them in sorted
// order. A script error aborts the pass and propagates; attributes already
// merged stay in place and the loaded flag is not set.
func (r *Registry) Load(path string) error {
	r.logger.Debug().Str("path", path).Msg("searching for override files")

	files, err := discoverFiles(path)
	if err != nil {
		return err
	}

	pass := newLoadPass(r)
	for _, file := range files {
		if err := pass.loadFile(file); err != nil {
			return err
		}
	}

	r.loaded = true
	return nil
}

// Loaded reports whether a load pass has completed.
func (r *Registry) Loaded() bool {
	return r.loaded
}

// RegisterDefault creates or replaces the attribute named name. Replacing an
// existing attribute is expected and logged at debug level.
func (r *Registry) RegisterDefault(name string, value Value, desc string) {
	r.setAttribute(name, value, desc, Provenance{Value: value.String()})
}

// RegisterBehavior records a documented callable and exposes it to the
// expression evaluators. Re-registering a name replaces the earlier record.
func (r *Registry) RegisterBehavior(b Behavior) {
	if b.Name == "" {
		return
	}
	if existing, ok := r.byName[b.Name]; ok {
		r.logger.Debug().Str("behavior", b.Name).Msg("overwriting behavior")
		*existing = b
	} else {
		record := b
		r.behaviors = append(r.behaviors, &record)
		r.byName[b.Name] = &record
	}
	if b.Fn != nil {
		if err := r.functions.Replace(b.Name, b.Fn); err != nil {
			r.logger.Debug().Err(err).Str("behavior", b.Name).Msg("behavior not exposed to evaluators")
		}
	}
}

// Behaviors returns the documented callables in registration order.
func (r *Registry) Behaviors() []Behavior {
	out := make([]Behavior, 0, len(r.behaviors))
	for _, b := range r.behaviors {
		out = append(out, *b)
	}
	return out
}

// Get returns the current value for name.
func (r *Registry) Get(name string) (Value, error) {
	attr, ok := r.attrs[name]
	if !ok {
		return Value{}, &AttributeNotFoundError{Name: name}
	}
	return attr.Value, nil
}

// Attribute returns the full record for name, metadata included.
func (r *Registry) Attribute(name string) (Attribute, error) {
	attr, ok := r.attrs[name]
	if !ok {
		return Attribute{}, &AttributeNotFoundError{Name: name}
	}
	return *attr, nil
}

// Attributes returns all records in registration order.
func (r *Registry) Attributes() []Attribute {
	out := make([]Attribute, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.attrs[name])
	}
	return out
}

// Bool returns the boolean attribute named name.
func (r *Registry) Bool(name string) (bool, error) {
	v, err := r.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, &KindError{Name: name, Want: KindBool, Got: v.Kind()}
	}
	return b, nil
}

// String returns the string attribute named name.
func (r *Registry) String(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", &KindError{Name: name, Want: KindString, Got: v.Kind()}
	}
	return s, nil
}

// Number returns the numeric attribute named name.
func (r *Registry) Number(name string) (float64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.AsNumber()
	if !ok {
		return 0, &KindError{Name: name, Want: KindNumber, Got: v.Kind()}
	}
	return n, nil
}

// Strings returns the string-sequence attribute named name.
func (r *Registry) Strings(name string) ([]string, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	ss, ok := v.AsStrings()
	if !ok {
		return nil, &KindError{Name: name, Want: KindStrings, Got: v.Kind()}
	}
	return ss, nil
}

// Func returns the callable attribute named name.
func (r *Registry) Func(name string) (Function, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	fn, ok := v.AsFunc()
	if !ok {
		return nil, &KindError{Name: name, Want: KindFunc, Got: v.Kind()}
	}
	return fn, nil
}

// Snapshot returns a plain-value view of the current attributes keyed by
// name. Callables surface as invocable functions.
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, len(r.order))
	for _, name := range r.order {
		out[name] = r.attrs[name].Value.Interface()
	}
	return out
}
