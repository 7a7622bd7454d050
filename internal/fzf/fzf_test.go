package fzf

import (
	"strings"
	"testing"
)

func TestGroupPickerLabelsAreSorted(t *testing.T) {
	p := NewGroupPicker(map[string][]string{
		"people":   {"authors", "publisher"},
		"myseries": {"series", "#myseries"},
	}, "")

	got := p.Labels()
	want := []string{"myseries [series, #myseries] ", "people [authors, publisher] "}
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestGroupPickerMarkdown(t *testing.T) {
	p := NewGroupPicker(map[string][]string{"myseries": {"series", "#myseries"}}, "")

	md := p.Markdown(0)
	for _, want := range []string{"# myseries", "`myseries:value`", "* `series`", "* `#myseries`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected markdown to contain %q, got %q", want, md)
		}
	}
	if p.Markdown(1) != "" || p.Markdown(-1) != "" {
		t.Fatalf("expected empty markdown out of range")
	}
}

func TestGroupPickerRunWithoutTerms(t *testing.T) {
	p := NewGroupPicker(nil, "")
	if _, err := p.Run(); err == nil {
		t.Fatalf("expected error when there is nothing to pick")
	}
}
