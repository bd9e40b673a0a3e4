package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dop251/goja"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// loadPass carries the state shared by every file in one Load invocation:
// the accumulated namespace seeded into each script's runtime, and the pass
// id used to correlate log lines and events.
type loadPass struct {
	registry  *Registry
	id        string
	names     []string
	namespace map[string]any
}

func newLoadPass(r *Registry) *loadPass {
	return &loadPass{
		registry:  r,
		id:        uuid.NewString(),
		namespace: make(map[string]any),
	}
}

// loadFile executes one override script and merges its top-level symbols.
// The script runs in a fresh runtime seeded with every symbol harvested so
// far in the pass, so later files can build on earlier ones. Only top-level
// var and function declarations become attributes; lexical (let/const)
// bindings stay script-private.
func (p *loadPass) loadFile(path string) error {
	p.registry.logger.Debug().Str("pass", p.id).Str("file", path).Msg("loading file")

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	vm := goja.New()
	global := vm.GlobalObject()
	seeded := make(map[string]goja.Value, len(p.names))
	for _, name := range p.names {
		if err := vm.Set(name, p.namespace[name]); err != nil {
			return fmt.Errorf("config: seeding %q for %s: %w", name, path, err)
		}
		seeded[name] = global.Get(name)
	}

	if _, err := vm.RunScript(path, string(src)); err != nil {
		return fmt.Errorf("config: executing %s: %w", path, err)
	}

	for _, name := range global.Keys() {
		if internalName(name) {
			continue
		}
		value := global.Get(name)
		if value == nil {
			// The runtime listed the name a moment ago; losing it now
			// means the pass state is corrupt.
			p.fail(path, name)
		}
		if prev, ok := seeded[name]; ok && value.StrictEquals(prev) {
			continue
		}
		p.harvest(vm, path, name, value)
	}

	if p.registry.hooks.Enabled() {
		if err := p.registry.hooks.Notify(LoadEvent{
			Kind: EventFileLoaded,
			Pass: p.id,
			File: path,
		}); err != nil {
			p.registry.logger.Debug().Err(err).Str("file", path).Msg("load hook failed")
		}
	}
	return nil
}

// harvest converts one top-level symbol into an attribute and folds it into
// the shared namespace. Script functions additionally register as documented
// behaviors.
func (p *loadPass) harvest(vm *goja.Runtime, path, name string, value goja.Value) {
	prov := Provenance{Source: path, Pass: p.id}

	if fn, ok := goja.AssertFunction(value); ok {
		wrapped := wrapCallable(vm, fn)
		p.registry.setAttribute(name, Func(wrapped), "", prov)
		p.registry.RegisterBehavior(Behavior{
			Name:   name,
			Params: functionParams(value),
			Doc:    functionDoc(vm, value),
			Fn:     wrapped,
		})
		p.put(name, wrapped)
		return
	}

	converted := valueFrom(value.Export())
	p.registry.setAttribute(name, converted, "", prov)
	p.put(name, converted.Interface())
}

func (p *loadPass) put(name string, value any) {
	if _, ok := p.namespace[name]; !ok {
		p.names = append(p.names, name)
	}
	p.namespace[name] = value
}

// fail terminates the process on an internal consistency violation. Not
// recoverable and not retried.
func (p *loadPass) fail(path, name string) {
	err := &LoadConsistencyError{File: path, Symbol: name}
	p.registry.logger.WithLevel(zerolog.FatalLevel).Err(err).
		Str("symbol", name).
		Str("file", path).
		Msg("symbol missing after definition")
	os.Exit(1)
}

// internalName reports whether a top-level name follows the script-internal
// naming convention and must not become an attribute.
func internalName(name string) bool {
	return strings.HasPrefix(name, "__") || strings.HasSuffix(name, "__")
}

// wrapCallable binds a script function into the Go Function shape. The
// closure keeps the defining runtime alive, so harvested callables stay
// invocable after the pass ends.
func wrapCallable(vm *goja.Runtime, fn goja.Callable) Function {
	return func(args ...any) (any, error) {
		values := make([]goja.Value, len(args))
		for i, arg := range args {
			values[i] = vm.ToValue(arg)
		}
		result, err := fn(goja.Undefined(), values...)
		if err != nil {
			return nil, err
		}
		return result.Export(), nil
	}
}

// functionDoc reads the __doc__ string property scripts attach to document
// a function. Undocumented functions yield the empty string.
func functionDoc(vm *goja.Runtime, value goja.Value) string {
	obj := value.ToObject(vm)
	if obj == nil {
		return ""
	}
	doc := obj.Get("__doc__")
	if doc == nil || goja.IsUndefined(doc) || goja.IsNull(doc) {
		return ""
	}
	return doc.String()
}

var (
	declaredParamsPattern = regexp.MustCompile(`^\s*(?:async\s+)?function\s*[^(]*\(([^)]*)\)`)
	arrowParamsPattern    = regexp.MustCompile(`^\s*(?:async\s+)?(?:\(([^)]*)\)|([A-Za-z_$][\w$]*))\s*=>`)
)

// functionParams recovers the parameter list from the function source text.
func functionParams(value goja.Value) string {
	src := value.String()
	if m := declaredParamsPattern.FindStringSubmatch(src); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := arrowParamsPattern.FindStringSubmatch(src); m != nil {
		if m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return m[2]
	}
	return ""
}
