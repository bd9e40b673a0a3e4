package config

import (
	"encoding/json"
)

// Trace captures provenance for an attribute: every write it received, in
// order, from built-in registration through override passes.
type Trace struct {
	Name   string       `json:"name"`
	Writes []Provenance `json:"writes"`
}

// Provenance details a single write. Source is empty for built-in defaults.
type Provenance struct {
	Source string `json:"source,omitempty"`
	Pass   string `json:"pass,omitempty"`
	Value  string `json:"value"`
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated
// via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// Trace returns the write history for name.
func (r *Registry) Trace(name string) (Trace, error) {
	trace, ok := r.traces[name]
	if !ok {
		return Trace{}, &AttributeNotFoundError{Name: name}
	}
	out := Trace{Name: trace.Name, Writes: append([]Provenance(nil), trace.Writes...)}
	return out, nil
}
