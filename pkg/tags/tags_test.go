package tags_test

import (
	"testing"

	"github.com/yaklabco/tagsoup/pkg/tags"
)

func TestSet_CaseInsensitive(t *testing.T) {
	t.Parallel()

	s := tags.NewSet("DIV", "p")

	tests := []struct {
		name     string
		lookup   string
		expected bool
	}{
		{"lower lookup of upper entry", "div", true},
		{"upper lookup of lower entry", "P", true},
		{"mixed case", "Div", true},
		{"absent", "span", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := s.Has(testCase.lookup); got != testCase.expected {
				t.Errorf("Has(%q) = %v, want %v", testCase.lookup, got, testCase.expected)
			}
		})
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := tags.NewSet("br")
	clone := original.Clone()
	clone.Add("hr")

	if original.Has("hr") {
		t.Error("mutating the clone leaked into the original")
	}
	if !clone.Has("br") {
		t.Error("clone lost an entry from the original")
	}
}

func TestDefaultTables(t *testing.T) {
	t.Parallel()

	void := tags.DefaultVoid()
	for _, name := range []string{"br", "img", "input", "wbr", "!doctype"} {
		if !void.Has(name) {
			t.Errorf("DefaultVoid missing %q", name)
		}
	}
	if void.Has("div") {
		t.Error("DefaultVoid should not contain div")
	}

	closing := tags.DefaultClosing()
	for _, name := range []string{"p", "li", "td", "option"} {
		if !closing.Has(name) {
			t.Errorf("DefaultClosing missing %q", name)
		}
	}

	childless := tags.DefaultChildless()
	for _, name := range []string{"script", "style", "template"} {
		if !childless.Has(name) {
			t.Errorf("DefaultChildless missing %q", name)
		}
	}

	breakers := tags.DefaultClosingTagAncestorBreakers()
	liBreakers, ok := breakers["li"]
	if !ok {
		t.Fatal("no ancestor breakers registered for li")
	}
	for _, name := range []string{"ul", "ol", "menu"} {
		if !liBreakers.Has(name) {
			t.Errorf("li breakers missing %q", name)
		}
	}
	if !breakers["td"].Has("table") {
		t.Error("td breakers missing table")
	}
}
