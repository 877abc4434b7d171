package models

import (
	"reflect"
	"testing"
)

func TestNewPillarRegistry_CustomPillars(t *testing.T) {
	r := NewPillarRegistry(
		Pillar{ID: "music"},
		Pillar{ID: PillarBusiness, Name: "Override"},
		Pillar{Name: "no id"},
	)

	if got := r.Name(PillarBusiness); got != "Negócios" {
		t.Errorf("built-in overridden: %q", got)
	}
	if got := r.Name("music"); got != "music" {
		t.Errorf("custom name = %q, want id fallback", got)
	}
	if _, ok := r.Lookup("unknown"); ok {
		t.Error("Lookup(unknown) should fail")
	}
	if n := len(r.All()); n != len(BuiltinPillars)+1 {
		t.Errorf("pillars = %d, want %d", n, len(BuiltinPillars)+1)
	}
}

func TestOrderedIDs(t *testing.T) {
	r := NewPillarRegistry(Pillar{ID: "music"})
	byPillar := map[string]int{
		"zeta":         1,
		PillarFamily:   1,
		"music":        1,
		PillarBusiness: 1,
		"alpha":        1,
	}

	got := OrderedIDs(r, byPillar)
	want := []string{PillarBusiness, PillarFamily, "music", "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedIDs = %v, want %v", got, want)
	}
}
