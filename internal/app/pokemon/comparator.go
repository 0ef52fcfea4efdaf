package pokemon

import (
	"pokedex-service/internal/domain"
	domainpokemon "pokedex-service/internal/domain/pokemon"
)

// BuildComparison computes the per-stat extremes, the type membership and the height/weight extremes
// over records. Ties go to the record that appears first. A stat a record does not carry counts as 0.
func BuildComparison(records []domainpokemon.Pokemon) (domainpokemon.Comparison, error) {
	if len(records) < domainpokemon.MinCompare {
		return domainpokemon.Comparison{}, domain.Invalidf("At least %d Pokemon are needed for a comparison, found %d", domainpokemon.MinCompare, len(records))
	}

	cmp := domainpokemon.Comparison{
		Stats: make(map[string]domainpokemon.Range, len(domainpokemon.ComparedStats)),
		Types: make(map[string][]string),
	}
	for _, stat := range domainpokemon.ComparedStats {
		cmp.Stats[stat] = extremes(records, func(p domainpokemon.Pokemon) int { return p.Stat(stat) })
	}
	for _, p := range records {
		// A tag repeated within one record counts once; records sharing a name each count.
		seen := make(map[string]struct{}, len(p.Types))
		for _, t := range p.Types {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			cmp.Types[t] = append(cmp.Types[t], p.Name)
		}
	}
	cmp.Height = extremes(records, func(p domainpokemon.Pokemon) int { return p.Height })
	cmp.Weight = extremes(records, func(p domainpokemon.Pokemon) int { return p.Weight })
	return cmp, nil
}

func extremes(records []domainpokemon.Pokemon, value func(domainpokemon.Pokemon) int) domainpokemon.Range {
	first := records[0]
	r := domainpokemon.Range{
		Highest: domainpokemon.Extreme{Name: first.Name, Value: value(first)},
		Lowest:  domainpokemon.Extreme{Name: first.Name, Value: value(first)},
	}
	for _, p := range records[1:] {
		v := value(p)
		if v > r.Highest.Value {
			r.Highest = domainpokemon.Extreme{Name: p.Name, Value: v}
		}
		if v < r.Lowest.Value {
			r.Lowest = domainpokemon.Extreme{Name: p.Name, Value: v}
		}
	}
	return r
}
