package battle

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// DamageEngine computes damage intervals. It is pure: no randomness, no
// state mutation. The caller collapses the interval to a concrete value
// with ApplyRoll.
type DamageEngine struct {
	chart *TypeChart
}

func NewDamageEngine(chart *TypeChart) *DamageEngine {
	if chart == nil {
		chart = DefaultTypeChart()
	}

	return &DamageEngine{chart: chart}
}

func (e *DamageEngine) Chart() *TypeChart {
	return e.chart
}

// CalculateDamage returns the (min, max) damage of one hit. Status moves
// and immune matchups return (0, 0). Fixed-damage moves return a
// degenerate interval. Everything is integer math with floor division;
// each multiplier in the chain is a small num/den ratio.
func (e *DamageEngine) CalculateDamage(attacker *Pokemon, defender *Pokemon, move MoveData, field *FieldState, defenderSide int, crit bool) (int, int) {
	if field == nil {
		field = &FieldState{}
	}

	if move.Category == DAMAGETYPE_STATUS {
		return 0, 0
	}

	// Immunity applies to fixed damage and OHKO moves too. Levitate and
	// a held balloon dodge ground moves the chart doesn't know about.
	eff := e.chart.DefenseEffectiveness(move.Type, defender.Types())
	if eff.IsImmune() {
		return 0, 0
	}
	if move.Type == TYPENAME_GROUND && !defender.IsGrounded() {
		return 0, 0
	}
	if defender.Ability == "soundproof" && move.HasFlag(FLAG_SOUND) {
		return 0, 0
	}

	switch move.FixedKind {
	case FIXED_LEVEL:
		return int(attacker.Level), int(attacker.Level)
	case FIXED_CONSTANT:
		return move.FixedAmount, move.FixedAmount
	case FIXED_HALF_HP:
		half := int(defender.Hp) / 2
		if half < 1 {
			half = 1
		}
		return half, half
	case FIXED_SACRIFICE:
		return int(attacker.Hp), int(attacker.Hp)
	}

	if move.OHKO {
		return int(defender.MaxHp), int(defender.MaxHp)
	}

	if move.Power <= 0 {
		return 0, 0
	}

	a, d := statPair(attacker, defender, move)
	if d < 1 {
		d = 1
	}

	base := (2*int(attacker.Level)/5 + 2) * move.Power * a / d
	base = base/50 + 2

	damage := base

	if attacker.HasType(move.Type) {
		stab := Ratio{3, 2}
		if attacker.Ability == "adaptability" {
			stab = Ratio{2, 1}
		}

		damage = stab.Apply(damage)
	}

	damage = eff.Apply(damage)

	damage = weatherModifier(field.Weather, move.Type).Apply(damage)
	damage = terrainModifier(field, attacker, defender, move).Apply(damage)

	if !crit {
		conditions := field.Sides[defenderSide]
		if move.Category == DAMAGETYPE_PHYSICAL && conditions.PhysicalScreenUp() {
			damage /= 2
		}
		if move.Category == DAMAGETYPE_SPECIAL && conditions.SpecialScreenUp() {
			damage /= 2
		}
	}

	if attacker.Ability == "technician" && move.Power <= 60 {
		damage = damage * 3 / 2
	}
	if attacker.Ability == "iron-fist" && move.HasFlag(FLAG_PUNCH) {
		damage = damage * 6 / 5
	}
	if attacker.Ability == "tinted-lens" && eff.LessThanOne() {
		damage *= 2
	}
	if (defender.Ability == "solid-rock" || defender.Ability == "filter") && eff.GreaterThanOne() {
		damage = damage * 3 / 4
	}

	switch attacker.Item {
	case "life-orb":
		damage = damage * 13 / 10
	case "expert-belt":
		if eff.GreaterThanOne() {
			damage = damage * 6 / 5
		}
	case "muscle-band":
		if move.Category == DAMAGETYPE_PHYSICAL {
			damage = damage * 11 / 10
		}
	case "wise-glasses":
		if move.Category == DAMAGETYPE_SPECIAL {
			damage = damage * 11 / 10
		}
	}

	if crit {
		if attacker.Ability == "sniper" {
			damage = damage * 9 / 4
		} else {
			damage = damage * 3 / 2
		}
	}

	if damage < 1 {
		damage = 1
	}

	minDamage := damage * 85 / 100
	if minDamage < 1 {
		minDamage = 1
	}

	damageLogger().V(1).Info("damage interval",
		"move", move.Name,
		"attacker", attacker.Name(),
		"defender", defender.Name(),
		"attackValue", a,
		"defValue", d,
		"effectiveness", eff.String(),
		"crit", crit,
		"min", minDamage,
		"max", damage)

	return minDamage, damage
}

// statPair picks the attacking and defending stats, applying the moves
// and abilities that swap or scale them, plus the burn penalty. Burn
// halves the attack stat itself, not the final damage.
func statPair(attacker *Pokemon, defender *Pokemon, move MoveData) (int, int) {
	var a, d int

	switch move.Category {
	case DAMAGETYPE_PHYSICAL:
		a = attacker.EffectiveStat(STAT_ATTACK)
		d = defender.EffectiveStat(STAT_DEFENSE)
	case DAMAGETYPE_SPECIAL:
		a = attacker.EffectiveStat(STAT_SPATTACK)
		d = defender.EffectiveStat(STAT_SPDEF)
	}

	switch move.Name {
	case "foul-play":
		a = defender.EffectiveStat(STAT_ATTACK)
	case "body-press":
		a = attacker.EffectiveStat(STAT_DEFENSE)
	case "psyshock", "psystrike":
		d = defender.EffectiveStat(STAT_DEFENSE)
	}

	switch attacker.Ability {
	case "huge-power", "pure-power":
		if move.Category == DAMAGETYPE_PHYSICAL {
			a *= 2
		}
	case "guts":
		if attacker.Status != STATUS_NONE && move.Category == DAMAGETYPE_PHYSICAL {
			a = a * 3 / 2
		}
	}

	if attacker.Status == STATUS_BURN && move.Category == DAMAGETYPE_PHYSICAL &&
		attacker.Ability != "guts" && move.Name != "facade" {
		a /= 2
	}

	if move.TargetDefHalved {
		d /= 2
	}

	return a, d
}

func weatherModifier(weather int, moveType string) Ratio {
	if (weather == WEATHER_RAIN && moveType == TYPENAME_WATER) ||
		(weather == WEATHER_SUN && moveType == TYPENAME_FIRE) {
		return Ratio{3, 2}
	}
	if (weather == WEATHER_RAIN && moveType == TYPENAME_FIRE) ||
		(weather == WEATHER_SUN && moveType == TYPENAME_WATER) {
		return Ratio{1, 2}
	}

	return ratioNeutral
}

func terrainModifier(field *FieldState, attacker *Pokemon, defender *Pokemon, move MoveData) Ratio {
	if attacker.IsGrounded() {
		if (field.Terrain == TERRAIN_ELECTRIC && move.Type == TYPENAME_ELECTRIC) ||
			(field.Terrain == TERRAIN_GRASSY && move.Type == TYPENAME_GRASS) ||
			(field.Terrain == TERRAIN_PSYCHIC && move.Type == TYPENAME_PSYCHIC) {
			return Ratio{3, 2}
		}
	}

	if defender.IsGrounded() {
		if field.Terrain == TERRAIN_GRASSY && lo.Contains(grassyWeakenedMoves, move.Name) {
			return Ratio{1, 2}
		}
		if field.Terrain == TERRAIN_MISTY && move.Type == TYPENAME_DRAGON {
			return Ratio{1, 2}
		}
	}

	return ratioNeutral
}

// ApplyRoll collapses a damage interval to a concrete value by picking
// one of the 16 spread rolls. maxDamage is the unrolled damage, so
// ApplyRoll(max, rng) lands inside [min, max].
func ApplyRoll(maxDamage int, rng *rand.Rand) int {
	if maxDamage <= 0 {
		return 0
	}

	roll := 85 + int(rng.UintN(16))
	damage := maxDamage * roll / 100
	if damage < 1 {
		damage = 1
	}

	return damage
}
