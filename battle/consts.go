package battle

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
	TYPENAME_DARK     = "Dark"
	TYPENAME_STEEL    = "Steel"
	TYPENAME_FAIRY    = "Fairy"
)

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

const (
	STAT_HP       = "hp"
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
	STAT_ACCURACY = "accuracy"
	STAT_EVASION  = "evasion"
)

const (
	STATUS_NONE = iota
	STATUS_SLEEP
	STATUS_PARA
	STATUS_FROZEN
	STATUS_BURN
	STATUS_POISON
	STATUS_TOXIC
)

const (
	WEATHER_NONE = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
	WEATHER_SNOW
)

const (
	TERRAIN_NONE = iota
	TERRAIN_ELECTRIC
	TERRAIN_GRASSY
	TERRAIN_PSYCHIC
	TERRAIN_MISTY
)

// Battle stat stages map to simple ratios, -6 => 2/8 up to +6 => 8/2.
var stageRatios = map[int]Ratio{
	-6: {2, 8},
	-5: {2, 7},
	-4: {2, 6},
	-3: {2, 5},
	-2: {2, 4},
	-1: {2, 3},
	0:  {2, 2},
	1:  {3, 2},
	2:  {4, 2},
	3:  {5, 2},
	4:  {6, 2},
	5:  {7, 2},
	6:  {8, 2},
}

// Accuracy and evasion use a 3-based table instead.
var accuracyStageRatios = map[int]Ratio{
	-6: {3, 9},
	-5: {3, 8},
	-4: {3, 7},
	-3: {3, 6},
	-2: {3, 5},
	-1: {3, 4},
	0:  {3, 3},
	1:  {4, 3},
	2:  {5, 3},
	3:  {6, 3},
	4:  {7, 3},
	5:  {8, 3},
	6:  {9, 3},
}

// Nature raises one stat by 10% and lowers another by 10%.
// Neutral natures leave both fields empty.
type Nature struct {
	Name  string
	Plus  string
	Minus string
}

var (
	NATURE_HARDY   = Nature{"hardy", "", ""}
	NATURE_LONELY  = Nature{"lonely", STAT_ATTACK, STAT_DEFENSE}
	NATURE_BRAVE   = Nature{"brave", STAT_ATTACK, STAT_SPEED}
	NATURE_ADAMANT = Nature{"adamant", STAT_ATTACK, STAT_SPATTACK}
	NATURE_NAUGHTY = Nature{"naughty", STAT_ATTACK, STAT_SPDEF}
	NATURE_BOLD    = Nature{"bold", STAT_DEFENSE, STAT_ATTACK}
	NATURE_DOCILE  = Nature{"docile", "", ""}
	NATURE_RELAXED = Nature{"relaxed", STAT_DEFENSE, STAT_SPEED}
	NATURE_IMPISH  = Nature{"impish", STAT_DEFENSE, STAT_SPATTACK}
	NATURE_LAX     = Nature{"lax", STAT_DEFENSE, STAT_SPDEF}
	NATURE_TIMID   = Nature{"timid", STAT_SPEED, STAT_ATTACK}
	NATURE_HASTY   = Nature{"hasty", STAT_SPEED, STAT_DEFENSE}
	NATURE_SERIOUS = Nature{"serious", "", ""}
	NATURE_JOLLY   = Nature{"jolly", STAT_SPEED, STAT_SPATTACK}
	NATURE_NAIVE   = Nature{"naive", STAT_SPEED, STAT_SPDEF}
	NATURE_MODEST  = Nature{"modest", STAT_SPATTACK, STAT_ATTACK}
	NATURE_MILD    = Nature{"mild", STAT_SPATTACK, STAT_DEFENSE}
	NATURE_QUIET   = Nature{"quiet", STAT_SPATTACK, STAT_SPEED}
	NATURE_BASHFUL = Nature{"bashful", "", ""}
	NATURE_RASH    = Nature{"rash", STAT_SPATTACK, STAT_SPDEF}
	NATURE_CALM    = Nature{"calm", STAT_SPDEF, STAT_ATTACK}
	NATURE_GENTLE  = Nature{"gentle", STAT_SPDEF, STAT_DEFENSE}
	NATURE_SASSY   = Nature{"sassy", STAT_SPDEF, STAT_SPEED}
	NATURE_CAREFUL = Nature{"careful", STAT_SPDEF, STAT_SPATTACK}
	NATURE_QUIRKY  = Nature{"quirky", "", ""}
)

var NATURES = []Nature{
	NATURE_HARDY, NATURE_LONELY, NATURE_BRAVE, NATURE_ADAMANT, NATURE_NAUGHTY,
	NATURE_BOLD, NATURE_DOCILE, NATURE_RELAXED, NATURE_IMPISH, NATURE_LAX,
	NATURE_TIMID, NATURE_HASTY, NATURE_SERIOUS, NATURE_JOLLY, NATURE_NAIVE,
	NATURE_MODEST, NATURE_MILD, NATURE_QUIET, NATURE_BASHFUL, NATURE_RASH,
	NATURE_CALM, NATURE_GENTLE, NATURE_SASSY, NATURE_CAREFUL, NATURE_QUIRKY,
}
