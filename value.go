package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Function is the Go shape of a callable configuration value. Functions
// harvested from override scripts are wrapped into this signature.
type Function func(args ...any) (any, error)

// Kind discriminates the shapes an attribute value can take.
type Kind int

const (
	// KindBool marks a boolean value.
	KindBool Kind = iota
	// KindString marks a string value.
	KindString
	// KindNumber marks a numeric value, stored as float64.
	KindNumber
	// KindStrings marks a fixed sequence of strings.
	KindStrings
	// KindFunc marks a callable value.
	KindFunc
)

// String returns the runtime type name used in documentation tables.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	case KindNumber:
		return "number"
	case KindStrings:
		return "tuple"
	case KindFunc:
		return "function"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the shapes a configuration attribute may
// hold: boolean, string, number, string sequence or callable.
type Value struct {
	kind Kind
	data any
}

// Bool wraps b as a configuration value.
func Bool(b bool) Value {
	return Value{kind: KindBool, data: b}
}

// String wraps s as a configuration value.
func String(s string) Value {
	return Value{kind: KindString, data: s}
}

// Number wraps n as a configuration value.
func Number(n float64) Value {
	return Value{kind: KindNumber, data: n}
}

// Strings wraps the sequence as a configuration value.
func Strings(values ...string) Value {
	return Value{kind: KindStrings, data: append([]string(nil), values...)}
}

// Func wraps fn as a callable configuration value.
func Func(fn Function) Value {
	return Value{kind: KindFunc, data: fn}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the plain Go value: bool, string, float64, []string or
// Function.
func (v Value) Interface() any {
	return v.data
}

// AsBool returns the boolean payload when the value holds one.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// AsString returns the string payload when the value holds one.
func (v Value) AsString() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// AsNumber returns the numeric payload when the value holds one.
func (v Value) AsNumber() (float64, bool) {
	n, ok := v.data.(float64)
	return n, ok
}

// AsStrings returns the string sequence payload when the value holds one.
func (v Value) AsStrings() ([]string, bool) {
	ss, ok := v.data.([]string)
	return ss, ok
}

// AsFunc returns the callable payload when the value holds one.
func (v Value) AsFunc() (Function, bool) {
	fn, ok := v.data.(Function)
	return fn, ok
}

// String renders the display form used by the documentation tables.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if b, _ := v.AsBool(); b {
			return "True"
		}
		return "False"
	case KindString:
		s, _ := v.AsString()
		return s
	case KindNumber:
		n, _ := v.AsNumber()
		return strconv.FormatFloat(n, 'f', -1, 64)
	case KindStrings:
		ss, _ := v.AsStrings()
		quoted := make([]string, len(ss))
		for i, s := range ss {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "(" + strings.Join(quoted, ", ") + ")"
	case KindFunc:
		return "<function>"
	default:
		return fmt.Sprint(v.data)
	}
}

// valueFrom normalizes an arbitrary exported script value into the tagged
// union. Sequences coerce element-wise to strings; anything outside the
// supported shapes falls back to its string form, values are never rejected.
func valueFrom(raw any) Value {
	switch t := raw.(type) {
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case float64:
		return Number(t)
	case []string:
		return Strings(t...)
	case []any:
		ss := make([]string, len(t))
		for i, item := range t {
			if s, ok := item.(string); ok {
				ss[i] = s
				continue
			}
			ss[i] = fmt.Sprint(item)
		}
		return Strings(ss...)
	case Function:
		return Func(t)
	case func(args ...any) (any, error):
		return Func(t)
	default:
		return String(fmt.Sprint(t))
	}
}
