package config

import "testing"

func TestValueDisplayForms(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"bool true", Bool(true), "True"},
		{"bool false", Bool(false), "False"},
		{"string", String("cesm"), "cesm"},
		{"integer number", Number(4), "4"},
		{"fractional number", Number(2.5), "2.5"},
		{"sequence", Strings("drv", "dart"), `("drv", "dart")`},
		{"callable", Func(func(args ...any) (any, error) { return nil, nil }), "<function>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValueFromNormalizesShapes(t *testing.T) {
	if v := valueFrom(int64(7)); v.Kind() != KindNumber {
		t.Fatalf("expected int64 to normalize to a number, got %v", v.Kind())
	}
	if v := valueFrom([]any{"a", "b"}); v.Kind() != KindStrings {
		t.Fatalf("expected []any to normalize to a sequence, got %v", v.Kind())
	}
	v := valueFrom([]any{"a", int64(2)})
	ss, _ := v.AsStrings()
	if len(ss) != 2 || ss[1] != "2" {
		t.Fatalf("expected mixed sequences to coerce element-wise, got %v", ss)
	}
	if v := valueFrom(map[string]any{"k": 1}); v.Kind() != KindString {
		t.Fatalf("expected unsupported shapes to fall back to strings, got %v", v.Kind())
	}
}

func TestValueAccessorsRejectOtherKinds(t *testing.T) {
	v := Bool(true)
	if _, ok := v.AsString(); ok {
		t.Fatalf("expected AsString to reject a bool value")
	}
	if _, ok := v.AsBool(); !ok {
		t.Fatalf("expected AsBool to accept a bool value")
	}
}
