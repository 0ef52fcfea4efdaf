package pokemon

import "strings"

// ComparedStats is the fixed statistic set a comparison reports on, in display order.
var ComparedStats = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

const (
	// MaxTeamSize caps a user's team.
	MaxTeamSize = 6
	// MinCompare and MaxCompare bound a comparison batch.
	MinCompare = 2
	MaxCompare = 6
)

// Pokemon is the hydrated record built from the core and species resources.
// Records are treated as immutable once built.
type Pokemon struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Types       []string       `json:"types" yaml:"types"`
	SpriteURL   *string        `json:"spriteUrl" yaml:"spriteUrl"`
	Height      int            `json:"height" yaml:"height"`
	Weight      int            `json:"weight" yaml:"weight"`
	Abilities   []string       `json:"abilities" yaml:"abilities"`
	Stats       map[string]int `json:"stats" yaml:"stats"`
	IsLegendary bool           `json:"isLegendary" yaml:"isLegendary"`
	IsMythical  bool           `json:"isMythical" yaml:"isMythical"`
	Description *string        `json:"description" yaml:"description"`
}

// Stat returns the named base stat, or 0 when the record does not carry it.
func (p Pokemon) Stat(name string) int {
	return p.Stats[name]
}

// HasType reports whether the record carries the type tag.
func (p Pokemon) HasType(typeName string) bool {
	for _, t := range p.Types {
		if t == typeName {
			return true
		}
	}
	return false
}

// SameName compares names case-insensitively, which is how team membership is keyed.
func (p Pokemon) SameName(name string) bool {
	return strings.EqualFold(p.Name, name)
}

// Extreme is one end of a min/max scan: which record, and its value.
type Extreme struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Range pairs the highest and lowest records for one attribute.
type Range struct {
	Highest Extreme `json:"highest" yaml:"highest"`
	Lowest  Extreme `json:"lowest" yaml:"lowest"`
}

// Comparison holds the derived statistics over a batch.
type Comparison struct {
	Stats  map[string]Range    `json:"stats" yaml:"stats"`
	Types  map[string][]string `json:"types" yaml:"types"`
	Height Range               `json:"height" yaml:"height"`
	Weight Range               `json:"weight" yaml:"weight"`
}

// ComparisonResult is the payload returned by a comparison.
type ComparisonResult struct {
	Pokemon    []Pokemon  `json:"pokemon" yaml:"pokemon"`
	Comparison Comparison `json:"comparison" yaml:"comparison"`
}

// TeamResponse is the payload returned by every team operation.
type TeamResponse struct {
	UserID   string    `json:"userId" yaml:"userId"`
	Team     []Pokemon `json:"team" yaml:"team"`
	TeamSize int       `json:"teamSize" yaml:"teamSize"`
}

// NewTeamResponse builds a TeamResponse; a nil team is reported as empty.
func NewTeamResponse(userID string, team []Pokemon) TeamResponse {
	if team == nil {
		team = []Pokemon{}
	}
	return TeamResponse{
		UserID:   userID,
		Team:     team,
		TeamSize: len(team),
	}
}
