// Package fixture serves a small, deterministic slice of the catalog from memory.
// It backs local runs and tests that must not touch the network.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"pokedex-service/internal/providers"
)

const spriteURLFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"

type entry struct {
	id        int
	name      string
	types     []string
	stats     [6]int
	height    int
	weight    int
	abilities []string
	legendary bool
	mythical  bool
	flavor    string
}

var roster = []entry{
	{1, "bulbasaur", []string{"grass", "poison"}, [6]int{45, 49, 49, 65, 65, 45}, 7, 69, []string{"overgrow", "chlorophyll"}, false, false,
		"A strange seed was\nplanted on its\nback at birth."},
	{6, "charizard", []string{"fire", "flying"}, [6]int{78, 84, 78, 109, 85, 100}, 17, 905, []string{"blaze", "solar-power"}, false, false,
		"Spits fire that\nis hot enough to\fmelt boulders."},
	{7, "squirtle", []string{"water"}, [6]int{44, 48, 65, 50, 64, 43}, 5, 90, []string{"torrent", "rain-dish"}, false, false,
		"After birth, its\nback swells and\nhardens into a\fshell."},
	{25, "pikachu", []string{"electric"}, [6]int{35, 55, 40, 50, 50, 90}, 4, 60, []string{"static", "lightning-rod"}, false, false,
		"When several of\nthese POKéMON\ngather, their\felectricity could\nbuild and cause\nlightning storms."},
	{54, "psyduck", []string{"water"}, [6]int{50, 52, 48, 65, 50, 55}, 8, 196, []string{"damp", "cloud-nine", "swift-swim"}, false, false,
		"While lulling its\nenemies with its\nvacant look, this\fwily POKéMON will\nuse psychokinetic\npowers."},
	{94, "gengar", []string{"ghost", "poison"}, [6]int{60, 65, 60, 130, 75, 110}, 15, 405, []string{"cursed-body"}, false, false,
		"Under a full moon,\nthis POKéMON likes\nto mimic the\fshadows of people\nand laugh at their\nfright."},
	{95, "onix", []string{"rock", "ground"}, [6]int{35, 45, 160, 30, 45, 70}, 88, 2100, []string{"rock-head", "sturdy", "weak-armor"}, false, false,
		"As it grows, the\nstone portions of\nits body harden\fto become similar\nto a diamond."},
	{120, "staryu", []string{"water"}, [6]int{30, 45, 55, 70, 55, 85}, 8, 345, []string{"illuminate", "natural-cure", "analytic"}, false, false,
		"An enigmatic\nPOKéMON that can\neffortlessly\fregenerate any\nappendage it\nloses in battle."},
	{121, "starmie", []string{"water", "psychic"}, [6]int{60, 75, 85, 100, 85, 115}, 11, 800, []string{"illuminate", "natural-cure", "analytic"}, false, false,
		"Its central core\nglows with the\nseven colors of\fthe rainbow."},
	{130, "gyarados", []string{"water", "flying"}, [6]int{95, 125, 79, 60, 100, 81}, 65, 2350, []string{"intimidate", "moxie"}, false, false,
		"Rarely seen in\nthe wild. Huge\nand vicious, it\fis capable of\ndestroying entire\ncities in a rage."},
	{149, "dragonite", []string{"dragon", "flying"}, [6]int{91, 134, 95, 100, 100, 80}, 22, 2100, []string{"inner-focus", "multiscale"}, false, false,
		"An extremely\nrarely seen\nmarine POKéMON.\fIts intelligence\nis said to match\nthat of humans."},
	{150, "mewtwo", []string{"psychic"}, [6]int{106, 110, 90, 154, 90, 130}, 20, 1220, []string{"pressure", "unnerve"}, true, false,
		"It was created by\na scientist after\nyears of horrific\fgene splicing and\nDNA engineering\nexperiments."},
	{151, "mew", []string{"psychic"}, [6]int{100, 100, 100, 100, 100, 100}, 4, 40, []string{"synchronize"}, false, true,
		"So rare that it\nis still said to\nbe a mirage by\fmany experts."},
}

var statNames = [6]string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// Provider answers Fetch calls from the embedded roster. It implements providers.Fetcher.
type Provider struct {
	payloads map[string]json.RawMessage
}

// New builds the fixture provider and pre-renders every payload.
func New() *Provider {
	p := &Provider{payloads: make(map[string]json.RawMessage)}

	dex := providers.PokedexPayload{ID: 2, Name: "kanto"}
	for _, e := range roster {
		core := buildCore(e)
		species := buildSpecies(e)
		p.put(providers.ResourcePokemon, e.name, core)
		p.put(providers.ResourcePokemon, strconv.Itoa(e.id), core)
		p.put(providers.ResourceSpecies, e.name, species)
		p.put(providers.ResourceSpecies, strconv.Itoa(e.id), species)

		dex.PokemonEntries = append(dex.PokemonEntries, providers.PokedexEntry{
			EntryNumber:    e.id,
			PokemonSpecies: providers.NamedResource{Name: e.name},
		})
	}
	p.put(providers.ResourcePokedex, dex.Name, dex)
	p.put(providers.ResourcePokedex, strconv.Itoa(dex.ID), dex)

	return p
}

// Fetch returns the stored payload for resource/key; unknown keys are absent.
func (p *Provider) Fetch(ctx context.Context, resource providers.Resource, key string) (json.RawMessage, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	payload, ok := p.payloads[cacheKey(resource, providers.NormalizeKey(key))]
	return payload, ok
}

// Names lists the roster in id order.
func Names() []string {
	out := make([]string, len(roster))
	for i, e := range roster {
		out[i] = e.name
	}
	return out
}

func (p *Provider) put(resource providers.Resource, key string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("fixture: marshal %s/%s: %v", resource, key, err))
	}
	p.payloads[cacheKey(resource, key)] = raw
}

func cacheKey(resource providers.Resource, key string) string {
	return string(resource) + "/" + key
}

func buildCore(e entry) providers.PokemonPayload {
	sprite := fmt.Sprintf(spriteURLFormat, e.id)
	core := providers.PokemonPayload{
		ID:      e.id,
		Name:    e.name,
		Height:  e.height,
		Weight:  e.weight,
		Sprites: providers.Sprites{FrontDefault: &sprite},
	}
	for i, t := range e.types {
		core.Types = append(core.Types, providers.TypeSlot{Slot: i + 1, Type: providers.NamedResource{Name: t}})
	}
	for i, a := range e.abilities {
		core.Abilities = append(core.Abilities, providers.AbilitySlot{
			Slot:     i + 1,
			IsHidden: i > 0 && i == len(e.abilities)-1,
			Ability:  providers.NamedResource{Name: a},
		})
	}
	for i, v := range e.stats {
		core.Stats = append(core.Stats, providers.StatEntry{BaseStat: v, Stat: providers.NamedResource{Name: statNames[i]}})
	}
	return core
}

func buildSpecies(e entry) providers.SpeciesPayload {
	return providers.SpeciesPayload{
		ID:          e.id,
		Name:        e.name,
		IsLegendary: e.legendary,
		IsMythical:  e.mythical,
		FlavorTextEntries: []providers.FlavorTextEntry{
			{FlavorText: e.flavor, Language: providers.NamedResource{Name: "ja"}, Version: providers.NamedResource{Name: "red"}},
			{FlavorText: e.flavor, Language: providers.NamedResource{Name: "en"}, Version: providers.NamedResource{Name: "red"}},
		},
	}
}
