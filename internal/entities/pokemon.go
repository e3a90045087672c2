// Package entities holds the domain data shared by the resolver, the battle engine and storage
package entities

// Pokemon is the fully resolved profile of a creature. The battle engine only reads
// Name, Types, Stats and Moves; the remaining fields are descriptive.
type Pokemon struct {
	Name           string         `json:"name"`
	ID             int            `json:"id"`
	Sprite         *string        `json:"sprite"`
	Types          []string       `json:"types"`
	Stats          map[string]int `json:"stats"`
	Abilities      []Ability      `json:"abilities"`
	Moves          []Move         `json:"moves"`
	EvolutionChain *EvolutionNode `json:"evolution_chain"`
}

// Stat returns the base stat for tag, applying the default when the tag is absent
func (p *Pokemon) Stat(tag string) int {
	if v, ok := p.Stats[tag]; ok {
		return v
	}
	return DefaultStat(tag)
}

// HasType reports whether the pokemon carries the given type tag
func (p *Pokemon) HasType(typeTag string) bool {
	for _, t := range p.Types {
		if t == typeTag {
			return true
		}
	}
	return false
}

// DefaultStat is the value used for a stat tag the provider did not report.
func DefaultStat(tag string) int {
	switch tag {
	case StatHP:
		return DefaultHP
	case StatSpeed:
		return DefaultSpeed
	default:
		return DefaultCombatStat
	}
}

// Move describes a single move. Power, Accuracy and PP are nil when the provider has no value.
type Move struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy *int   `json:"accuracy"`
	PP       *int   `json:"pp"`
	Effect   string `json:"effect,omitempty"`
}

// HasPower reports whether the move carries a usable (non-zero) power value
func (m *Move) HasPower() bool {
	return m.Power != nil && *m.Power != 0
}

// Ability is a passive trait with its English description
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EvolutionNode is one species in an evolution chain
type EvolutionNode struct {
	Name      string           `json:"name"`
	EvolvesTo []*EvolutionNode `json:"evolves_to"`
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
