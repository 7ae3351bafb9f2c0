package battle

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var turnLogger = func() logr.Logger {
	return internalLogger.WithName("turn")
}

// Action is one side's declared move for the turn.
type Action struct {
	Side      int
	MoveIndex int
}

// HitRecord is the structured log of a single hit (or miss). Multi-hit
// moves produce one record per hit.
type HitRecord struct {
	Side          int
	Move          string
	Damage        int
	Crit          bool
	Effectiveness Ratio
	Missed        bool
	Effects       []string
}

type TurnOutcome struct {
	Hits     []HitRecord
	Messages []string

	Over   bool
	Winner int
}

// TurnResolver runs full turns against a BattleState. All randomness
// comes from the state's own stream, so a cloned state replays the same
// turn bit for bit.
type TurnResolver struct {
	engine *DamageEngine
}

func NewTurnResolver(engine *DamageEngine) *TurnResolver {
	if engine == nil {
		engine = NewDamageEngine(nil)
	}

	return &TurnResolver{engine: engine}
}

func (r *TurnResolver) ResolveTurn(state *BattleState, actions [2]Action) (TurnOutcome, error) {
	outcome := TurnOutcome{Winner: -1}

	for _, action := range actions {
		active := state.Side(action.Side).ActivePokemon()
		if active == nil {
			return outcome, TurnResolutionError{Side: action.Side, Reason: "no active pokemon"}
		}
		if action.MoveIndex < 0 || action.MoveIndex >= len(active.Moves) {
			return outcome, TurnResolutionError{
				Side:   action.Side,
				Reason: fmt.Sprintf("move index %d out of range", action.MoveIndex),
			}
		}
	}

	rng := state.CreateRng()

	for _, action := range orderActions(state, actions, rng) {
		attacker := state.Side(action.Side).ActivePokemon()
		defender := state.OpposingSide(action.Side).ActivePokemon()
		if attacker == nil || defender == nil || !attacker.Alive() {
			continue
		}
		if !defender.Alive() {
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s has no target", attacker.Name()))
			continue
		}

		r.executeMove(state, action, rng, &outcome)
	}

	r.applyEndOfTurn(state, &outcome)

	for i := range state.Sides {
		r.replaceFainted(state, i, &outcome)
	}

	for i := range state.Sides {
		if p := state.Side(i).ActivePokemon(); p != nil {
			p.Flinched = false
		}
	}

	state.Turn++

	if winner := state.GameOver(); winner >= 0 {
		outcome.Over = true
		outcome.Winner = winner
	}

	turnLogger().V(1).Info("turn resolved", "turn", state.Turn, "hits", len(outcome.Hits), "over", outcome.Over)

	return outcome, nil
}

// orderActions sorts by priority, then effective speed, with speed ties
// broken by coin flip.
func orderActions(state *BattleState, actions [2]Action, rng *rand.Rand) []Action {
	type orderedAction struct {
		action   Action
		priority int
		speed    int
	}

	entries := lo.Map(actions[:], func(a Action, _ int) orderedAction {
		active := state.Side(a.Side).ActivePokemon()
		return orderedAction{
			action:   a,
			priority: active.Moves[a.MoveIndex].Priority,
			speed:    active.EffectiveSpeed(&state.Field),
		}
	})

	slices.SortStableFunc(entries, func(x, y orderedAction) int {
		if c := cmp.Compare(y.priority, x.priority); c != 0 {
			return c
		}

		return cmp.Compare(y.speed, x.speed)
	})

	if entries[0].priority == entries[1].priority && entries[0].speed == entries[1].speed {
		if rng.UintN(2) == 0 {
			entries[0], entries[1] = entries[1], entries[0]
		}
	}

	return lo.Map(entries, func(e orderedAction, _ int) Action { return e.action })
}

func (r *TurnResolver) executeMove(state *BattleState, action Action, rng *rand.Rand, outcome *TurnOutcome) {
	attackerSideIndex := action.Side
	defenderSideIndex := 1 - action.Side
	attacker := state.Side(attackerSideIndex).ActivePokemon()
	defender := state.Side(defenderSideIndex).ActivePokemon()
	move := attacker.Moves[action.MoveIndex]

	if !r.statusGate(attacker, rng, outcome) {
		return
	}

	outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s used %s", attacker.Name(), move.Name))

	record := HitRecord{Side: attackerSideIndex, Move: move.Name, Effectiveness: ratioNeutral}

	if move.OHKO && defender.Level > attacker.Level {
		record.Missed = true
		outcome.Hits = append(outcome.Hits, record)
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s is unaffected", defender.Name()))
		return
	}

	if !accuracyCheck(attacker, defender, move, rng) {
		record.Missed = true
		outcome.Hits = append(outcome.Hits, record)
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s avoided the attack", defender.Name()))
		return
	}

	if move.Category == DAMAGETYPE_STATUS {
		record.Effects = r.applyStatusMove(state, attackerSideIndex, attacker, defender, move, rng, outcome)
		outcome.Hits = append(outcome.Hits, record)
		return
	}

	eff := r.engine.Chart().DefenseEffectiveness(move.Type, defender.Types())
	record.Effectiveness = eff

	hits := 1
	if move.MultiHit() {
		if attacker.Ability == "skill-link" {
			hits = move.MaxHits
		} else {
			hits = move.MinHits + int(rng.UintN(uint(move.MaxHits-move.MinHits+1)))
		}
	}

	total := 0
	for h := 0; h < hits; h++ {
		hitRecord := record
		hitRecord.Crit = critRoll(attacker, defender, move, rng)

		minDamage, maxDamage := r.engine.CalculateDamage(attacker, defender, move, &state.Field, defenderSideIndex, hitRecord.Crit)

		damage := maxDamage
		if minDamage != maxDamage {
			damage = ApplyRoll(maxDamage, rng)
		}

		defender.ApplyDamage(damage)
		hitRecord.Damage = damage
		total += damage
		outcome.Hits = append(outcome.Hits, hitRecord)

		if !defender.Alive() {
			break
		}
	}

	if eff.IsImmune() {
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("it doesn't affect %s", defender.Name()))
	}

	if move.FixedKind == FIXED_SACRIFICE {
		attacker.Hp = 0
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s gave it everything", attacker.Name()))
	}

	if total > 0 {
		if move.RecoilPercent > 0 && attacker.Ability != "rock-head" {
			recoil := total * move.RecoilPercent / 100
			if recoil < 1 {
				recoil = 1
			}

			attacker.ApplyDamage(recoil)
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s was hurt by recoil", attacker.Name()))
		}

		if move.DrainPercent > 0 {
			heal := total * move.DrainPercent / 100
			if heal < 1 {
				heal = 1
			}

			attacker.HealDamage(heal)
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s had its energy drained", defender.Name()))
		}
	}

	if total > 0 && defender.Alive() {
		r.applySecondaryEffects(state, attacker, defender, move, rng, outcome)
	}
}

// statusGate checks whether the pokemon can act at all this turn.
func (r *TurnResolver) statusGate(poke *Pokemon, rng *rand.Rand, outcome *TurnOutcome) bool {
	if poke.Flinched {
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s flinched and couldn't move", poke.Name()))
		return false
	}

	switch poke.Status {
	case STATUS_SLEEP:
		if poke.SleepCount > 0 {
			poke.SleepCount--
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s is fast asleep", poke.Name()))
			return false
		}

		poke.Status = STATUS_NONE
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s woke up", poke.Name()))
	case STATUS_FROZEN:
		if rng.UintN(100) < 20 {
			poke.Status = STATUS_NONE
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s thawed out", poke.Name()))
		} else {
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s is frozen solid", poke.Name()))
			return false
		}
	case STATUS_PARA:
		if rng.UintN(100) < 25 {
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s is fully paralyzed", poke.Name()))
			return false
		}
	}

	return true
}

func accuracyCheck(attacker *Pokemon, defender *Pokemon, move MoveData, rng *rand.Rand) bool {
	if move.AlwaysHits() {
		return true
	}

	chance := accuracyStageRatios[attacker.Stages.Accuracy].Apply(move.Accuracy)

	// higher evasion shrinks the chance, so the ratio flips
	evasion := accuracyStageRatios[defender.Stages.Evasion]
	chance = chance * evasion.Den / evasion.Num

	if chance > 100 {
		chance = 100
	}

	return int(rng.UintN(100)) < chance
}

func critRoll(attacker *Pokemon, defender *Pokemon, move MoveData, rng *rand.Rand) bool {
	if defender.Ability == "battle-armor" || defender.Ability == "shell-armor" {
		return false
	}

	denom := uint(24)
	if move.HighCrit {
		denom = 8
	}

	return rng.UintN(denom) == 0
}

// applyStatusMove covers field-setting moves by name, falling back to
// the move's declared ailment and stat changes.
func (r *TurnResolver) applyStatusMove(state *BattleState, attackerSideIndex int, attacker *Pokemon, defender *Pokemon, move MoveData, rng *rand.Rand, outcome *TurnOutcome) []string {
	defenderSideIndex := 1 - attackerSideIndex
	var effects []string

	switch move.Name {
	case "reflect":
		state.Field.Sides[attackerSideIndex].ReflectTurns = 5
		return append(effects, "reflect")
	case "light-screen":
		state.Field.Sides[attackerSideIndex].LightScreenTurns = 5
		return append(effects, "light-screen")
	case "aurora-veil":
		state.Field.Sides[attackerSideIndex].AuroraVeilTurns = 5
		return append(effects, "aurora-veil")
	case "rain-dance":
		state.Field.SetWeather(WEATHER_RAIN, 5)
		return append(effects, "rain")
	case "sunny-day":
		state.Field.SetWeather(WEATHER_SUN, 5)
		return append(effects, "sun")
	case "sandstorm":
		state.Field.SetWeather(WEATHER_SANDSTORM, 5)
		return append(effects, "sandstorm")
	case "snowscape":
		state.Field.SetWeather(WEATHER_SNOW, 5)
		return append(effects, "snow")
	case "electric-terrain":
		state.Field.SetTerrain(TERRAIN_ELECTRIC, 5)
		return append(effects, "electric-terrain")
	case "grassy-terrain":
		state.Field.SetTerrain(TERRAIN_GRASSY, 5)
		return append(effects, "grassy-terrain")
	case "psychic-terrain":
		state.Field.SetTerrain(TERRAIN_PSYCHIC, 5)
		return append(effects, "psychic-terrain")
	case "misty-terrain":
		state.Field.SetTerrain(TERRAIN_MISTY, 5)
		return append(effects, "misty-terrain")
	case "spikes":
		layers := &state.Field.Sides[defenderSideIndex].SpikesLayers
		if *layers < 3 {
			*layers++
		}
		return append(effects, "spikes")
	case "stealth-rock":
		state.Field.Sides[defenderSideIndex].StealthRock = true
		return append(effects, "stealth-rock")
	}

	if move.Ailment != STATUS_NONE {
		if applied := applyAilment(state, defender, move.Ailment, rng); applied != "" {
			effects = append(effects, applied)
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s was %s", defender.Name(), applied))
		} else {
			outcome.Messages = append(outcome.Messages, "but it failed")
		}
	}

	for _, change := range move.StatChanges {
		target := defender
		if change.Self {
			target = attacker
		}

		target.Stages.Change(change.Stat, change.Change)
		effects = append(effects, fmt.Sprintf("%s %+d", change.Stat, change.Change))
	}

	return effects
}

func (r *TurnResolver) applySecondaryEffects(state *BattleState, attacker *Pokemon, defender *Pokemon, move MoveData, rng *rand.Rand, outcome *TurnOutcome) {
	if move.Ailment != STATUS_NONE {
		chance := move.AilmentChance
		if chance <= 0 {
			chance = 100
		}

		if int(rng.UintN(100)) < chance {
			if applied := applyAilment(state, defender, move.Ailment, rng); applied != "" {
				outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s was %s", defender.Name(), applied))
			}
		}
	}

	if len(move.StatChanges) > 0 {
		chance := move.StatChance
		if chance <= 0 {
			chance = 100
		}

		if int(rng.UintN(100)) < chance {
			for _, change := range move.StatChanges {
				target := defender
				if change.Self {
					target = attacker
				}

				target.Stages.Change(change.Stat, change.Change)
			}
		}
	}

	if move.FlinchChance > 0 && int(rng.UintN(100)) < move.FlinchChance {
		defender.Flinched = true
	}
}

// applyAilment returns the display name of the status applied, or ""
// when blocked.
func applyAilment(state *BattleState, target *Pokemon, ailment int, rng *rand.Rand) string {
	if ailmentBlocked(target, ailment, &state.Field) {
		return ""
	}

	target.Status = ailment

	switch ailment {
	case STATUS_SLEEP:
		target.SleepCount = 1 + int(rng.UintN(3))
		return "put to sleep"
	case STATUS_PARA:
		return "paralyzed"
	case STATUS_FROZEN:
		return "frozen"
	case STATUS_BURN:
		return "burned"
	case STATUS_POISON:
		return "poisoned"
	case STATUS_TOXIC:
		target.ToxicCount = 0
		return "badly poisoned"
	}

	return ""
}

func ailmentBlocked(target *Pokemon, ailment int, field *FieldState) bool {
	if target.Status != STATUS_NONE {
		return true
	}

	if target.IsGrounded() {
		if field.Terrain == TERRAIN_MISTY {
			return true
		}
		if field.Terrain == TERRAIN_ELECTRIC && ailment == STATUS_SLEEP {
			return true
		}
	}

	switch ailment {
	case STATUS_BURN:
		return target.HasType(TYPENAME_FIRE)
	case STATUS_PARA:
		return target.HasType(TYPENAME_ELECTRIC)
	case STATUS_POISON, STATUS_TOXIC:
		return target.HasType(TYPENAME_POISON) || target.HasType(TYPENAME_STEEL)
	case STATUS_FROZEN:
		return target.HasType(TYPENAME_ICE)
	}

	return false
}

func (r *TurnResolver) applyEndOfTurn(state *BattleState, outcome *TurnOutcome) {
	for i := range state.Sides {
		poke := state.Side(i).ActivePokemon()
		if poke == nil || !poke.Alive() {
			continue
		}

		switch poke.Status {
		case STATUS_BURN:
			chipDamage(poke, int(poke.MaxHp)/16, "its burn", outcome)
		case STATUS_POISON:
			chipDamage(poke, int(poke.MaxHp)/8, "poison", outcome)
		case STATUS_TOXIC:
			poke.ToxicCount++
			chipDamage(poke, int(poke.MaxHp)*poke.ToxicCount/16, "poison", outcome)
		}

		if state.Field.Weather == WEATHER_SANDSTORM && poke.Alive() && !sandImmune(poke) {
			chipDamage(poke, int(poke.MaxHp)/16, "the sandstorm", outcome)
		}
	}

	state.Field.TickCounters()
}

func chipDamage(poke *Pokemon, damage int, cause string, outcome *TurnOutcome) {
	if damage < 1 {
		damage = 1
	}

	poke.ApplyDamage(damage)
	outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s was hurt by %s", poke.Name(), cause))
}

func sandImmune(poke *Pokemon) bool {
	return poke.HasType(TYPENAME_ROCK) || poke.HasType(TYPENAME_GROUND) || poke.HasType(TYPENAME_STEEL)
}

// replaceFainted swaps in the next healthy party member, applying entry
// hazards, looping in case the replacement faints to them too.
func (r *TurnResolver) replaceFainted(state *BattleState, sideIndex int, outcome *TurnOutcome) {
	side := state.Side(sideIndex)

	for {
		active := side.ActivePokemon()
		if active == nil || active.Alive() {
			return
		}

		active.Stages.Clear()
		active.Flinched = false
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s fainted", active.Name()))

		next := side.FirstHealthy(side.ActiveSlots[0])
		if next < 0 {
			return
		}

		side.SetActive(next)
		incoming := side.ActivePokemon()
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("%s was sent out", incoming.Name()))
		r.applyEntryHazards(state, sideIndex, incoming, outcome)
	}
}

func (r *TurnResolver) applyEntryHazards(state *BattleState, sideIndex int, poke *Pokemon, outcome *TurnOutcome) {
	conditions := state.Field.Sides[sideIndex]

	if conditions.StealthRock {
		eff := r.engine.Chart().DefenseEffectiveness(TYPENAME_ROCK, poke.Types())
		chipDamage(poke, eff.Apply(int(poke.MaxHp)/8), "stealth rock", outcome)
	}

	if conditions.SpikesLayers > 0 && poke.Alive() && poke.IsGrounded() {
		den := 8
		switch conditions.SpikesLayers {
		case 2:
			den = 6
		case 3:
			den = 4
		}

		chipDamage(poke, int(poke.MaxHp)/den, "spikes", outcome)
	}
}
