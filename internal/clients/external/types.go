package external

// NamedResource is PokeAPI's {name, url} reference
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EffectEntry is a localised effect text
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// PokemonData is the subset of /pokemon/{name} the resolver reads
type PokemonData struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Sprites   SpriteData    `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatSlot    `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
	Moves     []MoveSlot    `json:"moves"`
	Species   NamedResource `json:"species"`
}

// SpriteData holds sprite URLs; missing sprites are null
type SpriteData struct {
	FrontDefault *string `json:"front_default"`
}

// TypeSlot is one of a pokemon's types
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatSlot is one base stat
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot references an ability
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// MoveSlot references a learnable move
type MoveSlot struct {
	Move NamedResource `json:"move"`
}

// SpeciesData is the subset of /pokemon-species/{name} the resolver reads
type SpeciesData struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	EvolutionChain *ResourceLinkURL `json:"evolution_chain"`
}

// ResourceLinkURL is PokeAPI's unnamed {url} reference
type ResourceLinkURL struct {
	URL string `json:"url"`
}

// EvolutionChainData is /evolution-chain/{id}
type EvolutionChainData struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one recursive step of an evolution chain
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []*ChainLink  `json:"evolves_to"`
}

// MoveData is the subset of /move/{name} the resolver reads
type MoveData struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Type          NamedResource `json:"type"`
	Power         *int          `json:"power"`
	Accuracy      *int          `json:"accuracy"`
	PP            *int          `json:"pp"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// AbilityData is the subset of /ability/{name} the resolver reads
type AbilityData struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// EnglishEffect returns the first English effect text, or ok=false when there is none
func EnglishEffect(entries []EffectEntry) (string, bool) {
	for _, entry := range entries {
		if entry.Language.Name == LanguageEnglish {
			return entry.Effect, true
		}
	}
	return "", false
}
