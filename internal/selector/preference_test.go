package selector

import (
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

func TestPreferredTypes_VisualExpansion(t *testing.T) {
	state := learner.NewState("x")
	state.Preferences["learning_style"] = "visual"

	types := PreferredTypes(state)
	want := []catalog.ContentType{catalog.TypeVideo, catalog.TypeDiagram, catalog.TypeImage}
	for i, ct := range want {
		if types[i] != ct {
			t.Errorf("position %d = %q, want %q", i, types[i], ct)
		}
	}
}

func TestPreferredTypes_CoversAllKnownTypes(t *testing.T) {
	state := learner.NewState("x")
	state.Preferences["learning_style"] = "kinesthetic"

	types := PreferredTypes(state)
	if len(types) != len(catalog.AllContentTypes()) {
		t.Fatalf("got %d types, want %d", len(types), len(catalog.AllContentTypes()))
	}

	seen := make(map[catalog.ContentType]bool)
	for _, ct := range types {
		if seen[ct] {
			t.Errorf("duplicate type %q", ct)
		}
		seen[ct] = true
	}
}

func TestPreferredTypes_UnknownValueFallsThrough(t *testing.T) {
	state := learner.NewState("x")
	state.Preferences["learning_style"] = "telepathic"

	types := PreferredTypes(state)
	// Unknown values expand to nothing; the list is just catalog order.
	all := catalog.AllContentTypes()
	for i, ct := range all {
		if types[i] != ct {
			t.Errorf("position %d = %q, want %q", i, types[i], ct)
		}
	}
}

func TestPreferredTypes_NormalizesValue(t *testing.T) {
	state := learner.NewState("x")
	state.Preferences["learning_style"] = "  Visual "

	types := PreferredTypes(state)
	if types[0] != catalog.TypeVideo {
		t.Errorf("got %q first, want video", types[0])
	}
}

func TestPreferredTypes_MultipleCategoriesDeterministic(t *testing.T) {
	state := learner.NewState("x")
	// Categories walk in sorted key order: "format" before "learning_style".
	state.Preferences["learning_style"] = "visual"
	state.Preferences["format"] = "kinesthetic"

	types := PreferredTypes(state)
	want := []catalog.ContentType{
		catalog.TypeGame, catalog.TypeQuiz, // kinesthetic
		catalog.TypeVideo, catalog.TypeDiagram, catalog.TypeImage, // visual
	}
	for i, ct := range want {
		if types[i] != ct {
			t.Errorf("position %d = %q, want %q", i, types[i], ct)
		}
	}
}
