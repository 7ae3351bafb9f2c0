package battle

import (
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var scorerLogger = func() logr.Logger {
	return internalLogger.WithName("scorer")
}

// Abilities that snowball off knockouts, worth a small nudge.
var momentumAbilities = []string{"moxie", "beast-boost", "chilling-neigh", "grim-neigh"}

// MoveScorer is the opponent heuristic: score every usable move, pick
// the best. Scores are plain ints so ties are exact.
type MoveScorer struct {
	engine *DamageEngine
}

func NewMoveScorer(engine *DamageEngine) *MoveScorer {
	if engine == nil {
		engine = NewDamageEngine(nil)
	}

	return &MoveScorer{engine: engine}
}

// ScoreMove rates one move against the current matchup. Damaging moves
// score the percent of the defender's remaining HP the interval midpoint
// removes, plus knockout and priority bonuses. Useless moves go to -10
// so anything playable beats them.
func (s *MoveScorer) ScoreMove(attacker *Pokemon, defender *Pokemon, move MoveData, field *FieldState, defenderSideIndex int) int {
	if field == nil {
		field = &FieldState{}
	}

	if move.Category == DAMAGETYPE_STATUS {
		if move.Ailment != STATUS_NONE && ailmentBlocked(defender, move.Ailment, field) {
			return -10
		}

		return 6
	}

	eff := s.engine.Chart().DefenseEffectiveness(move.Type, defender.Types())
	if eff.IsImmune() {
		return -10
	}

	minDamage, maxDamage := s.engine.CalculateDamage(attacker, defender, move, field, defenderSideIndex, false)
	if maxDamage <= 0 {
		return -10
	}

	defenderHp := int(defender.Hp)
	if defenderHp < 1 {
		defenderHp = 1
	}

	score := (minDamage + maxDamage) / 2 * 100 / defenderHp
	if score > 100 {
		score = 100
	}

	attackerSpeed := attacker.EffectiveSpeed(field)
	defenderSpeed := defender.EffectiveSpeed(field)
	goesFirst := move.Priority > 0 || attackerSpeed >= defenderSpeed

	if maxDamage >= int(defender.Hp) {
		if goesFirst {
			score += 12
		} else {
			score += 9
		}

		if lo.Contains(momentumAbilities, attacker.Ability) {
			score++
		}
	}

	lowHp := attacker.Hp*3 <= attacker.MaxHp
	if move.Priority > 0 && lowHp && attackerSpeed < defenderSpeed {
		score += 11
	}

	scorerLogger().V(2).Info("scored move", "move", move.Name, "score", score)

	return score
}

// ChooseMove returns the index of the best scoring move. Ties go to the
// first-declared move unless an RNG is supplied, in which case one of
// the tied moves is picked at random.
func (s *MoveScorer) ChooseMove(state *BattleState, sideIndex int, rng *rand.Rand) (int, error) {
	attacker := state.Side(sideIndex).ActivePokemon()
	defender := state.OpposingSide(sideIndex).ActivePokemon()
	if attacker == nil || defender == nil {
		return 0, TurnResolutionError{Side: sideIndex, Reason: "no active pokemon to score for"}
	}

	bestScore := math.MinInt
	var best []int

	for i, move := range attacker.Moves {
		if move.IsNil() {
			continue
		}

		score := s.ScoreMove(attacker, defender, move, &state.Field, 1-sideIndex)
		if score > bestScore {
			bestScore = score
			best = []int{i}
		} else if score == bestScore {
			best = append(best, i)
		}
	}

	if len(best) == 0 {
		return 0, TurnResolutionError{Side: sideIndex, Reason: "no usable moves"}
	}

	if rng != nil && len(best) > 1 {
		return best[rng.IntN(len(best))], nil
	}

	return best[0], nil
}
