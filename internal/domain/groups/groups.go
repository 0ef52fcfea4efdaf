// Package groups holds the static trainer and region tables.
package groups

import "strings"

// Region ties a region name to its generation tag and the upstream pokedex that lists its members.
type Region struct {
	Name       string `json:"name" yaml:"name"`
	Generation string `json:"generation" yaml:"generation"`
	Pokedex    string `json:"pokedex" yaml:"pokedex"`
}

var trainers = map[string][]string{
	"ash": {
		"pikachu", "charizard", "squirtle", "bulbasaur", "greninja",
		"infernape", "sceptile", "lycanroc", "dragonite", "gengar",
	},
	"misty":   {"starmie", "staryu", "goldeen", "psyduck", "togepi", "gyarados"},
	"brock":   {"onix", "geodude", "vulpix", "crobat", "sudowoodo", "steelix"},
	"gary":    {"blastoise", "umbreon", "electivire", "arcanine", "nidoking", "scizor"},
	"lance":   {"dragonite", "gyarados", "aerodactyl", "charizard", "tyranitar"},
	"cynthia": {"garchomp", "spiritomb", "milotic", "roserade", "togekiss", "lucario"},
}

var regions = map[string]Region{
	"kanto":  {Name: "kanto", Generation: "generation-i", Pokedex: "kanto"},
	"johto":  {Name: "johto", Generation: "generation-ii", Pokedex: "original-johto"},
	"hoenn":  {Name: "hoenn", Generation: "generation-iii", Pokedex: "hoenn"},
	"sinnoh": {Name: "sinnoh", Generation: "generation-iv", Pokedex: "original-sinnoh"},
	"unova":  {Name: "unova", Generation: "generation-v", Pokedex: "original-unova"},
	"kalos":  {Name: "kalos", Generation: "generation-vi", Pokedex: "kalos-central"},
	"alola":  {Name: "alola", Generation: "generation-vii", Pokedex: "original-alola"},
	"galar":  {Name: "galar", Generation: "generation-viii", Pokedex: "galar"},
}

// Trainer returns a copy of the trainer's roster in its fixed order. Lookup is case-insensitive.
func Trainer(name string) ([]string, bool) {
	roster, ok := trainers[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(roster))
	copy(out, roster)
	return out, true
}

// LookupRegion returns the region entry. Lookup is case-insensitive.
func LookupRegion(name string) (Region, bool) {
	r, ok := regions[strings.ToLower(name)]
	return r, ok
}
