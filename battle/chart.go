package battle

import "fmt"

// Ratio is a rational multiplier applied with floor division.
// Every modifier in the damage pipeline goes through one of these so
// the whole calculation stays in integer math.
type Ratio struct {
	Num int
	Den int
}

var ratioNeutral = Ratio{1, 1}

func (r Ratio) Apply(value int) int {
	return value * r.Num / r.Den
}

func (r Ratio) Mul(other Ratio) Ratio {
	return Ratio{r.Num * other.Num, r.Den * other.Den}
}

func (r Ratio) IsNeutral() bool {
	return r.Num == r.Den
}

func (r Ratio) IsImmune() bool {
	return r.Num == 0
}

// LessThanOne reports a resisted multiplier.
func (r Ratio) LessThanOne() bool {
	return r.Num != 0 && r.Num < r.Den
}

// GreaterThanOne reports a super-effective multiplier.
func (r Ratio) GreaterThanOne() bool {
	return r.Num > r.Den
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// TypeChart holds attack-type vs defense-type multipliers. Pairs that were
// never registered are neutral. Charts are frozen after setup and shared
// read-only between the damage engine and the scorer.
type TypeChart struct {
	rows   map[string]map[string]Ratio
	frozen bool
}

func NewTypeChart() *TypeChart {
	return &TypeChart{rows: make(map[string]map[string]Ratio)}
}

// Register adds or overwrites a single matchup. Registering on a frozen
// chart is a programming error and panics.
func (c *TypeChart) Register(attackType string, defenseType string, eff Ratio) {
	if c.frozen {
		panic("register on frozen type chart")
	}

	row, ok := c.rows[attackType]
	if !ok {
		row = make(map[string]Ratio)
		c.rows[attackType] = row
	}

	row[defenseType] = eff
}

func (c *TypeChart) Freeze() {
	c.frozen = true
}

// Effectiveness looks up a single attack-type vs defense-type multiplier.
func (c *TypeChart) Effectiveness(attackType string, defenseType string) Ratio {
	row, ok := c.rows[attackType]
	if !ok {
		return ratioNeutral
	}

	eff, ok := row[defenseType]
	if !ok {
		return ratioNeutral
	}

	return eff
}

// DefenseEffectiveness composes the multiplier against a dual-typed defender.
func (c *TypeChart) DefenseEffectiveness(attackType string, defenseTypes []string) Ratio {
	eff := ratioNeutral
	for _, t := range defenseTypes {
		eff = eff.Mul(c.Effectiveness(attackType, t))
	}

	return eff
}

var defaultChartRows = map[string]map[string]Ratio{
	TYPENAME_NORMAL: {
		TYPENAME_ROCK: {1, 2}, TYPENAME_GHOST: {0, 1}, TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_FIRE: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_WATER: {1, 2}, TYPENAME_GRASS: {2, 1},
		TYPENAME_ICE: {2, 1}, TYPENAME_BUG: {2, 1}, TYPENAME_ROCK: {1, 2},
		TYPENAME_DRAGON: {1, 2}, TYPENAME_STEEL: {2, 1},
	},
	TYPENAME_WATER: {
		TYPENAME_FIRE: {2, 1}, TYPENAME_WATER: {1, 2}, TYPENAME_GRASS: {1, 2},
		TYPENAME_GROUND: {2, 1}, TYPENAME_ROCK: {2, 1}, TYPENAME_DRAGON: {1, 2},
	},
	TYPENAME_ELECTRIC: {
		TYPENAME_WATER: {2, 1}, TYPENAME_ELECTRIC: {1, 2}, TYPENAME_GRASS: {1, 2},
		TYPENAME_GROUND: {0, 1}, TYPENAME_FLYING: {2, 1}, TYPENAME_DRAGON: {1, 2},
	},
	TYPENAME_GRASS: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_WATER: {2, 1}, TYPENAME_GRASS: {1, 2},
		TYPENAME_POISON: {1, 2}, TYPENAME_GROUND: {2, 1}, TYPENAME_FLYING: {1, 2},
		TYPENAME_BUG: {1, 2}, TYPENAME_ROCK: {2, 1}, TYPENAME_DRAGON: {1, 2},
		TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_ICE: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_WATER: {1, 2}, TYPENAME_GRASS: {2, 1},
		TYPENAME_ICE: {1, 2}, TYPENAME_GROUND: {2, 1}, TYPENAME_FLYING: {2, 1},
		TYPENAME_DRAGON: {2, 1}, TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_FIGHTING: {
		TYPENAME_NORMAL: {2, 1}, TYPENAME_ICE: {2, 1}, TYPENAME_POISON: {1, 2},
		TYPENAME_FLYING: {1, 2}, TYPENAME_PSYCHIC: {1, 2}, TYPENAME_BUG: {1, 2},
		TYPENAME_ROCK: {2, 1}, TYPENAME_GHOST: {0, 1}, TYPENAME_DARK: {2, 1},
		TYPENAME_STEEL: {2, 1}, TYPENAME_FAIRY: {1, 2},
	},
	TYPENAME_POISON: {
		TYPENAME_GRASS: {2, 1}, TYPENAME_POISON: {1, 2}, TYPENAME_GROUND: {1, 2},
		TYPENAME_ROCK: {1, 2}, TYPENAME_GHOST: {1, 2}, TYPENAME_STEEL: {0, 1},
		TYPENAME_FAIRY: {2, 1},
	},
	TYPENAME_GROUND: {
		TYPENAME_FIRE: {2, 1}, TYPENAME_ELECTRIC: {2, 1}, TYPENAME_GRASS: {1, 2},
		TYPENAME_POISON: {2, 1}, TYPENAME_FLYING: {0, 1}, TYPENAME_BUG: {1, 2},
		TYPENAME_ROCK: {2, 1}, TYPENAME_STEEL: {2, 1},
	},
	TYPENAME_FLYING: {
		TYPENAME_ELECTRIC: {1, 2}, TYPENAME_GRASS: {2, 1}, TYPENAME_FIGHTING: {2, 1},
		TYPENAME_BUG: {2, 1}, TYPENAME_ROCK: {1, 2}, TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_PSYCHIC: {
		TYPENAME_FIGHTING: {2, 1}, TYPENAME_POISON: {2, 1}, TYPENAME_PSYCHIC: {1, 2},
		TYPENAME_DARK: {0, 1}, TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_BUG: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_GRASS: {2, 1}, TYPENAME_FIGHTING: {1, 2},
		TYPENAME_POISON: {1, 2}, TYPENAME_FLYING: {1, 2}, TYPENAME_PSYCHIC: {2, 1},
		TYPENAME_GHOST: {1, 2}, TYPENAME_DARK: {2, 1}, TYPENAME_STEEL: {1, 2},
		TYPENAME_FAIRY: {1, 2},
	},
	TYPENAME_ROCK: {
		TYPENAME_FIRE: {2, 1}, TYPENAME_ICE: {2, 1}, TYPENAME_FIGHTING: {1, 2},
		TYPENAME_GROUND: {1, 2}, TYPENAME_FLYING: {2, 1}, TYPENAME_BUG: {2, 1},
		TYPENAME_STEEL: {1, 2},
	},
	TYPENAME_GHOST: {
		TYPENAME_NORMAL: {0, 1}, TYPENAME_PSYCHIC: {2, 1}, TYPENAME_GHOST: {2, 1},
		TYPENAME_DARK: {1, 2},
	},
	TYPENAME_DRAGON: {
		TYPENAME_DRAGON: {2, 1}, TYPENAME_STEEL: {1, 2}, TYPENAME_FAIRY: {0, 1},
	},
	TYPENAME_DARK: {
		TYPENAME_FIGHTING: {1, 2}, TYPENAME_PSYCHIC: {2, 1}, TYPENAME_GHOST: {2, 1},
		TYPENAME_DARK: {1, 2}, TYPENAME_FAIRY: {1, 2},
	},
	TYPENAME_STEEL: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_WATER: {1, 2}, TYPENAME_ELECTRIC: {1, 2},
		TYPENAME_ICE: {2, 1}, TYPENAME_ROCK: {2, 1}, TYPENAME_STEEL: {1, 2},
		TYPENAME_FAIRY: {2, 1},
	},
	TYPENAME_FAIRY: {
		TYPENAME_FIRE: {1, 2}, TYPENAME_FIGHTING: {2, 1}, TYPENAME_POISON: {1, 2},
		TYPENAME_DRAGON: {2, 1}, TYPENAME_DARK: {2, 1}, TYPENAME_STEEL: {1, 2},
	},
}

// DefaultTypeChart builds a frozen chart with the standard matchups.
func DefaultTypeChart() *TypeChart {
	chart := NewTypeChart()
	for attackType, row := range defaultChartRows {
		for defenseType, eff := range row {
			chart.Register(attackType, defenseType, eff)
		}
	}

	chart.Freeze()
	return chart
}
