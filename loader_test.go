package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadLexicographicLastWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), "var X = 1;")
	writeFile(t, filepath.Join(dir, "b.cfg"), "var X = 2;")
	writeFile(t, filepath.Join(dir, "m.cfg"), "var X = 3;")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got, err := r.Number("X")
	if err != nil {
		t.Fatalf("unexpected error reading X: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected the lexicographically last file to win, got %v", got)
	}
}

func TestLoadSingleFileMatchesDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "only.cfg")
	writeFile(t, file, "var machine = \"melvin\";")

	r := newTestInstance(t)
	if err := r.Load(file); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	fromFile, err := r.String("machine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r = newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	fromDir, err := r.String("machine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fromFile != fromDir {
		t.Fatalf("expected identical results for file and directory loads: %q vs %q", fromFile, fromDir)
	}
}

func TestLoadSharedNamespaceAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), "var compiler_base = \"gnu\";")
	writeFile(t, filepath.Join(dir, "b.cfg"), "var compiler = compiler_base + \"-9\";")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got, err := r.String("compiler")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "gnu-9" {
		t.Fatalf("expected later files to see earlier symbols, got %q", got)
	}
}

func TestLoadLaterFileOverridesSeededSymbol(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), "var driver_default = \"mct\";")
	writeFile(t, filepath.Join(dir, "b.cfg"), "driver_default = \"nuopc\";")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got, err := r.String("driver_default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "nuopc" {
		t.Fatalf("expected the reassignment in b.cfg to win, got %q", got)
	}

	trace, err := r.Trace("driver_default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Built-in default, a.cfg, then b.cfg.
	if len(trace.Writes) != 3 {
		t.Fatalf("expected three writes in the trace, got %+v", trace.Writes)
	}
	if filepath.Base(trace.Writes[2].Source) != "b.cfg" {
		t.Fatalf("expected the last write to come from b.cfg, got %q", trace.Writes[2].Source)
	}
}

func TestLoadSkipsInternalNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), "var __helper__ = 1;\nvar __private = 2;\nvar visible = 3;")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if _, err := r.Get("__helper__"); err == nil {
		t.Fatalf("expected dunder-style names to be skipped")
	}
	if _, err := r.Get("__private"); err == nil {
		t.Fatalf("expected internal-prefixed names to be skipped")
	}
	if _, err := r.Get("visible"); err != nil {
		t.Fatalf("expected visible to be harvested: %v", err)
	}
}

func TestLoadOverridesDefaultAndLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.cfg"), "var enable_smp = false;")

	var buf bytes.Buffer
	r := newTestInstance(t, WithLogger(zerolog.New(&buf)))
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	enabled, err := r.Bool("enable_smp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enabled {
		t.Fatalf("expected the override to replace the built-in default")
	}
	if !bytes.Contains(buf.Bytes(), []byte("overwriting attribute")) {
		t.Fatalf("expected the overwrite to be logged, got %s", buf.String())
	}
}

func TestLoadHarvestsFunctions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "funcs.cfg"), `
function baseline_name(case_name, machine) {
	return machine + "/" + case_name;
}
baseline_name.__doc__ = "Returns the baseline path for a case.";
`)

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	fn, err := r.Func("baseline_name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := fn("ERS.f19_g16", "melvin")
	if err != nil {
		t.Fatalf("unexpected call error: %v", err)
	}
	if result != "melvin/ERS.f19_g16" {
		t.Fatalf("unexpected function result %v", result)
	}

	behaviors := r.Behaviors()
	if len(behaviors) != 1 {
		t.Fatalf("expected one behavior, got %d", len(behaviors))
	}
	b := behaviors[0]
	if b.Params != "case_name, machine" {
		t.Fatalf("unexpected parameter list %q", b.Params)
	}
	if b.Doc != "Returns the baseline path for a case." {
		t.Fatalf("unexpected doc %q", b.Doc)
	}
}

func TestLoadFunctionVisibleToLaterFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), `
function prefix(name) { return "cime_" + name; }
`)
	writeFile(t, filepath.Join(dir, "b.cfg"), "var case_prefix = prefix(\"test\");")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got, err := r.String("case_prefix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cime_test" {
		t.Fatalf("expected later files to call earlier functions, got %q", got)
	}
}

func TestLoadSetsLoadedFlag(t *testing.T) {
	r := newTestInstance(t)
	if r.Loaded() {
		t.Fatalf("expected loaded to be false before any load")
	}
	if err := r.Load(t.TempDir()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !r.Loaded() {
		t.Fatalf("expected loaded to be true after an empty load pass")
	}
}

func TestLoadScriptErrorAbortsPass(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cfg"), "var good = true;")
	writeFile(t, filepath.Join(dir, "b.cfg"), "var broken = ;")

	r := newTestInstance(t)
	err := r.Load(dir)
	if err == nil {
		t.Fatalf("expected a script error to propagate")
	}
	if r.Loaded() {
		t.Fatalf("expected loaded to stay false after an aborted pass")
	}
	// Earlier files stay applied; there is no rollback.
	if _, getErr := r.Get("good"); getErr != nil {
		t.Fatalf("expected partial application to stand: %v", getErr)
	}
}

func TestLoadMixedValueShapes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shapes.cfg"), `
var flag = true;
var label = "melvin";
var count = 4;
var ratio = 2.5;
var drivers = ["nuopc", "mct"];
`)

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if v, err := r.Bool("flag"); err != nil || !v {
		t.Fatalf("flag: got %v, %v", v, err)
	}
	if v, err := r.String("label"); err != nil || v != "melvin" {
		t.Fatalf("label: got %q, %v", v, err)
	}
	if v, err := r.Number("count"); err != nil || v != 4 {
		t.Fatalf("count: got %v, %v", v, err)
	}
	if v, err := r.Number("ratio"); err != nil || v != 2.5 {
		t.Fatalf("ratio: got %v, %v", v, err)
	}
	v, err := r.Strings("drivers")
	if err != nil || len(v) != 2 || v[0] != "nuopc" || v[1] != "mct" {
		t.Fatalf("drivers: got %v, %v", v, err)
	}
}

func TestLoadNotifiesHooks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.cfg"), "var enable_smp = false;")

	var events []LoadEvent
	hook := HookFunc(func(event LoadEvent) error {
		events = append(events, event)
		return nil
	})

	r := newTestInstance(t, WithLoadHook(hook))
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	var sets, loads int
	for _, event := range events {
		if event.Pass == "" {
			t.Fatalf("expected every load event to carry a pass id: %+v", event)
		}
		switch event.Kind {
		case EventAttributeSet:
			sets++
			if event.Attribute != "enable_smp" {
				t.Fatalf("unexpected attribute event %+v", event)
			}
			if event.Previous != "True" || event.Value != "False" {
				t.Fatalf("unexpected transition %q -> %q", event.Previous, event.Value)
			}
		case EventFileLoaded:
			loads++
			if filepath.Base(event.File) != "site.cfg" {
				t.Fatalf("unexpected file event %+v", event)
			}
		}
	}
	if sets != 1 || loads != 1 {
		t.Fatalf("expected one set and one file event, got %d and %d", sets, loads)
	}
}

func TestPackageLoadReturnsSingleton(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.cfg"), "var enable_smp = false;")

	Reset()
	t.Cleanup(Reset)

	r, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if r != Instance() {
		t.Fatalf("expected Load to return the singleton")
	}
	if !r.Loaded() {
		t.Fatalf("expected the registry to be marked loaded")
	}
}

func TestTraceRoundTripsJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.cfg"), "var enable_smp = false;")

	r := newTestInstance(t)
	if err := r.Load(dir); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	trace, err := r.Trace("enable_smp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if decoded.Name != "enable_smp" || len(decoded.Writes) != len(trace.Writes) {
		t.Fatalf("expected the trace to survive the round trip, got %+v", decoded)
	}
}
