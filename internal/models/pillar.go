package models

import (
	"maps"
	"slices"
)

// Pillar is a life domain a user plans against.
type Pillar struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Built-in pillar ids.
const (
	PillarBusiness  = "business"
	PillarPhysical  = "physical"
	PillarMental    = "mental"
	PillarSpiritual = "spiritual"
	PillarEducation = "education"
	PillarFinance   = "finance"
	PillarFamily    = "family"
)

// BuiltinPillars is the fixed reference set, in display order.
var BuiltinPillars = []Pillar{
	{ID: PillarBusiness, Name: "Negócios", Color: "#42A5F5"},
	{ID: PillarPhysical, Name: "Saúde Física", Color: "#EF5350"},
	{ID: PillarMental, Name: "Saúde Mental", Color: "#AB47BC"},
	{ID: PillarSpiritual, Name: "Saúde Espiritual", Color: "#5C6BC0"},
	{ID: PillarEducation, Name: "Educação", Color: "#26A69A"},
	{ID: PillarFinance, Name: "Finanças", Color: "#66BB6A"},
	{ID: PillarFamily, Name: "Família", Color: "#EC407A"},
}

// PillarRegistry resolves built-in and custom pillars.
type PillarRegistry struct {
	pillars []Pillar
	byID    map[string]Pillar
}

// NewPillarRegistry returns a registry of the built-ins plus custom pillars.
// Custom pillars never override a built-in id.
func NewPillarRegistry(custom ...Pillar) *PillarRegistry {
	r := &PillarRegistry{byID: make(map[string]Pillar)}
	for _, p := range BuiltinPillars {
		r.add(p)
	}
	for _, p := range custom {
		if p.ID == "" {
			continue
		}
		if _, exists := r.byID[p.ID]; exists {
			continue
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		r.add(p)
	}
	return r
}

func (r *PillarRegistry) add(p Pillar) {
	r.pillars = append(r.pillars, p)
	r.byID[p.ID] = p
}

// Lookup returns the pillar with the given id.
func (r *PillarRegistry) Lookup(id string) (Pillar, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Name returns the display name, falling back to the id.
func (r *PillarRegistry) Name(id string) string {
	if p, ok := r.byID[id]; ok {
		return p.Name
	}
	return id
}

// All returns pillars in display order.
func (r *PillarRegistry) All() []Pillar {
	return append([]Pillar(nil), r.pillars...)
}

// OrderedIDs lists the keys of byPillar in registry display order, followed by
// any unregistered keys sorted by id.
func OrderedIDs[V any](r *PillarRegistry, byPillar map[string]V) []string {
	order := make([]string, 0, len(byPillar))
	seen := make(map[string]bool, len(byPillar))
	for _, p := range r.All() {
		if _, ok := byPillar[p.ID]; ok {
			order = append(order, p.ID)
			seen[p.ID] = true
		}
	}
	for _, id := range slices.Sorted(maps.Keys(byPillar)) {
		if !seen[id] {
			order = append(order, id)
		}
	}
	return order
}
