package rst

import (
	"strings"
	"testing"
)

func TestWriteHeader(t *testing.T) {
	var b strings.Builder
	WriteHeader(&b, "Variables", "Config Variables:", '"')

	want := ".. _Config Variables:\n\n" +
		"\"\"\"\"\"\"\"\"\"\n" +
		"Variables\n" +
		"\"\"\"\"\"\"\"\"\"\n"
	if b.String() != want {
		t.Fatalf("unexpected header output:\n%q", b.String())
	}
}

func TestWriteHeaderWithoutAnchor(t *testing.T) {
	var b strings.Builder
	WriteHeader(&b, "Methods", "", '"')

	if strings.Contains(b.String(), ".. _") {
		t.Fatalf("expected no anchor line, got %q", b.String())
	}
	if !strings.HasPrefix(b.String(), "\"\"\"\"\"\"\"\n") {
		t.Fatalf("expected a separator sized to the header, got %q", b.String())
	}
}

func TestWriteTableWidthsAndDividers(t *testing.T) {
	var b strings.Builder
	WriteTable(&b,
		[]string{"Variable", "Default"},
		[][]string{
			{"x", "1"},
			{"long_variable", "22"},
		},
	)

	want := strings.Join([]string{
		"============= =======",
		"Variable      Default",
		"============= =======",
		"x             1      ",
		"long_variable 22     ",
		"============= =======",
		"",
	}, "\n")
	if b.String() != want {
		t.Fatalf("unexpected table output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWriteTableHeaderWidthDominates(t *testing.T) {
	var b strings.Builder
	WriteTable(&b, []string{"Description"}, [][]string{{"x"}})

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if lines[0] != strings.Repeat("=", len("Description")) {
		t.Fatalf("expected divider sized to header, got %q", lines[0])
	}
}

func TestWriteTableNoRows(t *testing.T) {
	var b strings.Builder
	WriteTable(&b, []string{"A", "B"}, nil)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected divider, header, divider, divider for an empty table, got %q", lines)
	}
}
