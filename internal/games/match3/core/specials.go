package core

import (
	"sort"
	"time"
)

// Ability identifies the behaviour of a consumed special tile.
type Ability int

const (
	AbilityCross Ability = iota
	AbilityDragonSlave
	AbilityInsatiableHunger
	AbilityCrystalNova
	AbilityFrostBlast
	AbilityMagicMissile
	AbilitySplinterBlast
)

// Area is the board region a special clears when it fires.
type Area uint8

const (
	AreaNone         Area = iota
	AreaRow               // Whole row through the special
	AreaNeighbors         // 3x3 block minus the centre
	AreaRowAndColumn      // Whole row and whole column through the special
)

// String returns a short description of the area.
func (a Area) String() string {
	switch a {
	case AreaRow:
		return "row"
	case AreaNeighbors:
		return "neighbours"
	case AreaRowAndColumn:
		return "row+column"
	default:
		return "none"
	}
}

// Rule describes what a special of a given base does when consumed.
type Rule struct {
	Ability      Ability
	Name         string
	Area         Area
	RandomClears int      // Extra occupied cells removed at random
	Effects      []Effect // Emitted in order
}

const (
	defaultSlowFactor = 0.5
	splinterCount     = 5
)

var specialRules = map[int]Rule{
	1: {
		Ability: AbilityDragonSlave,
		Name:    "Dragon Slave",
		Area:    AreaRow,
		Effects: []Effect{EnemyDamage{Amount: 15}},
	},
	2: {
		Ability: AbilityInsatiableHunger,
		Name:    "Insatiable Hunger",
		Effects: []Effect{Lifesteal{Duration: 6000 * time.Millisecond}},
	},
	3: {
		Ability: AbilityCrystalNova,
		Name:    "Crystal Nova",
		Area:    AreaNeighbors,
		Effects: []Effect{
			EnemyDamage{Amount: 10},
			EnemySlow{Factor: defaultSlowFactor, Duration: 6000 * time.Millisecond},
		},
	},
	4: {
		Ability: AbilityFrostBlast,
		Name:    "Frost Blast",
		Area:    AreaNeighbors,
		Effects: []Effect{
			EnemyDamage{Amount: 8},
			EnemySlow{Factor: defaultSlowFactor, Duration: 9000 * time.Millisecond},
		},
	},
	5: {
		Ability: AbilityMagicMissile,
		Name:    "Magic Missile",
		Effects: []Effect{
			EnemyDamage{Amount: 20},
			EnemyStun{Duration: 3000 * time.Millisecond},
		},
	},
	6: {
		Ability:      AbilitySplinterBlast,
		Name:         "Splinter Blast",
		RandomClears: splinterCount,
		Effects:      []Effect{EnemyDamage{Amount: 12}},
	},
}

var crossRule = Rule{
	Ability: AbilityCross,
	Name:    "Cross",
	Area:    AreaRowAndColumn,
	Effects: []Effect{EnemyDamage{Amount: 10}},
}

// RuleFor returns the rule for a special of the given base.
// Bases without a dedicated entry clear their row and column.
func RuleFor(base int) Rule {
	if r, ok := specialRules[base]; ok {
		return r
	}
	return crossRule
}

// RuleEntry pairs a base with its rule for listing.
type RuleEntry struct {
	Base    int // 0 for the fallback rule
	Rule    Rule
	Default bool
}

// RuleTable returns every dedicated rule sorted by base, followed by the
// fallback rule.
func RuleTable() []RuleEntry {
	bases := make([]int, 0, len(specialRules))
	for b := range specialRules {
		bases = append(bases, b)
	}
	sort.Ints(bases)

	out := make([]RuleEntry, 0, len(bases)+1)
	for _, b := range bases {
		out = append(out, RuleEntry{Base: b, Rule: specialRules[b]})
	}
	return append(out, RuleEntry{Rule: crossRule, Default: true})
}

// areaCells returns the in-bounds cells an area covers around p.
func areaCells(b *Board, p Pos, area Area) []Pos {
	var out []Pos
	switch area {
	case AreaRow:
		for c := 0; c < b.cols; c++ {
			out = append(out, P(p.Row, c))
		}
	case AreaNeighbors:
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := P(p.Row+dr, p.Col+dc)
				if b.InBounds(q) {
					out = append(out, q)
				}
			}
		}
	case AreaRowAndColumn:
		for c := 0; c < b.cols; c++ {
			out = append(out, P(p.Row, c))
		}
		for r := 0; r < b.rows; r++ {
			out = append(out, P(r, p.Col))
		}
	}
	return out
}
