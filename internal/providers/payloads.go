package providers

// The upstream schema is consumed as-is; only the fields the hydrator reads are modelled.

// NamedResource is the upstream {name, url} reference wrapper.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// PokemonPayload is the core resource.
type PokemonPayload struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatEntry   `json:"stats"`
	Sprites   Sprites       `json:"sprites"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Sprites carries the default front sprite; upstream sends null when it has none.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// SpeciesPayload is the taxonomy resource.
type SpeciesPayload struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	IsLegendary       bool              `json:"is_legendary"`
	IsMythical        bool              `json:"is_mythical"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// PokedexPayload is the region listing resource.
type PokedexPayload struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	PokemonEntries []PokedexEntry `json:"pokemon_entries"`
}

type PokedexEntry struct {
	EntryNumber    int           `json:"entry_number"`
	PokemonSpecies NamedResource `json:"pokemon_species"`
}
