package battle

import (
	"errors"
	"reflect"
	"testing"

	"github.com/samber/lo"
)

func TestBadMoveIndex(t *testing.T) {
	player := buildTestPokemon(t, bulbasaurBase, 50, moveTackle)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveTackle)
	state := getSimpleState(t, player, opponent, 1, 2)

	resolver := NewTurnResolver(nil)
	_, err := resolver.ResolveTurn(&state, [2]Action{
		{Side: SIDE_PLAYER, MoveIndex: 3},
		{Side: SIDE_OPPONENT, MoveIndex: 0},
	})

	var turnErr TurnResolutionError
	if !errors.As(err, &turnErr) {
		t.Fatalf("expected TurnResolutionError, got %v", err)
	}
	if turnErr.Side != SIDE_PLAYER {
		t.Fatalf("expected error to blame side %d, got %d", SIDE_PLAYER, turnErr.Side)
	}
}

func TestFasterPokemonActsFirst(t *testing.T) {
	player := buildTestPokemon(t, charizardBase, 50, moveTackle)
	opponent := buildTestPokemon(t, venusaurBase, 50, moveVineWhip)
	state := getSimpleState(t, player, opponent, 1, 2)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{
		{Side: SIDE_PLAYER, MoveIndex: 0},
		{Side: SIDE_OPPONENT, MoveIndex: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcome.Hits) == 0 {
		t.Fatal("expected at least one hit record")
	}
	if outcome.Hits[0].Side != SIDE_PLAYER {
		t.Fatalf("expected the faster side to act first, first hit from side %d", outcome.Hits[0].Side)
	}
}

func TestPriorityBeatsSpeed(t *testing.T) {
	player := buildTestPokemon(t, charizardBase, 50, moveTackle)
	opponent := buildTestPokemon(t, venusaurBase, 50, moveQuickAttack)
	state := getSimpleState(t, player, opponent, 1, 2)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{
		{Side: SIDE_PLAYER, MoveIndex: 0},
		{Side: SIDE_OPPONENT, MoveIndex: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Hits[0].Side != SIDE_OPPONENT {
		t.Fatalf("expected the priority move to go first, first hit from side %d", outcome.Hits[0].Side)
	}
}

func TestParalysisQuartersSpeed(t *testing.T) {
	poke := buildTestPokemon(t, charizardBase, 50, moveTackle)

	healthy := poke.EffectiveSpeed(nil)
	poke.Status = STATUS_PARA

	if got := poke.EffectiveSpeed(nil); got != healthy/4 {
		t.Fatalf("expected paralysis to quarter speed: healthy %d, got %d", healthy, got)
	}
}

func TestMultiHitCounts(t *testing.T) {
	furySwipes := MoveData{
		Name: "fury-swipes", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_PHYSICAL,
		Power: 10, Accuracy: 100, MinHits: 3, MaxHits: 5, Flags: []string{FLAG_CONTACT},
	}

	resolver := NewTurnResolver(nil)
	counts := map[int]int{}

	for seed := uint64(0); seed < 100; seed++ {
		player := buildTestPokemon(t, bulbasaurBase, 50, furySwipes)
		opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
		state := getSimpleState(t, player, opponent, seed, seed*31+7)

		outcome, err := resolver.ResolveTurn(&state, [2]Action{
			{Side: SIDE_PLAYER, MoveIndex: 0},
			{Side: SIDE_OPPONENT, MoveIndex: 0},
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		hits := lo.CountBy(outcome.Hits, func(h HitRecord) bool {
			return h.Side == SIDE_PLAYER && !h.Missed
		})

		if hits < 3 || hits > 5 {
			t.Fatalf("seed %d: expected 3-5 hits, got %d", seed, hits)
		}

		counts[hits]++
	}

	for _, want := range []int{3, 4, 5} {
		if counts[want] < 5 {
			t.Errorf("hit count %d appeared only %d times over 100 seeds", want, counts[want])
		}
	}
}

func TestEndOfTurnResiduals(t *testing.T) {
	player := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	state := getSimpleState(t, player, opponent, 5, 6)

	state.Side(SIDE_PLAYER).ActivePokemon().Status = STATUS_BURN

	resolver := NewTurnResolver(nil)
	if _, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	burned := state.Side(SIDE_PLAYER).ActivePokemon()
	wantHp := burned.MaxHp - burned.MaxHp/16
	if burned.Hp != wantHp {
		t.Fatalf("expected burn chip to leave %d hp, got %d", wantHp, burned.Hp)
	}
}

func TestToxicRamps(t *testing.T) {
	player := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	state := getSimpleState(t, player, opponent, 5, 6)

	poisoned := state.Side(SIDE_PLAYER).ActivePokemon()
	poisoned.Status = STATUS_TOXIC

	resolver := NewTurnResolver(nil)
	actions := [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}

	if _, err := resolver.ResolveTurn(&state, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxHp := int(poisoned.MaxHp)
	afterFirst := maxHp - maxHp/16
	if int(poisoned.Hp) != afterFirst {
		t.Fatalf("expected %d hp after first toxic tick, got %d", afterFirst, poisoned.Hp)
	}

	if _, err := resolver.ResolveTurn(&state, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	afterSecond := afterFirst - maxHp*2/16
	if int(poisoned.Hp) != afterSecond {
		t.Fatalf("expected %d hp after second toxic tick, got %d", afterSecond, poisoned.Hp)
	}
}

func TestScreenExpiry(t *testing.T) {
	player := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	state := getSimpleState(t, player, opponent, 9, 10)

	state.Field.Sides[SIDE_PLAYER].ReflectTurns = 1

	resolver := NewTurnResolver(nil)
	if _, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Field.Sides[SIDE_PLAYER].PhysicalScreenUp() {
		t.Fatal("expected reflect to expire after its last turn")
	}
}

func TestRecoil(t *testing.T) {
	takeDown := MoveData{
		Name: "take-down", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_PHYSICAL,
		Power: 90, Accuracy: 100, RecoilPercent: 25, Flags: []string{FLAG_CONTACT},
	}

	player := buildTestPokemon(t, charizardBase, 50, takeDown)
	opponent := buildTestPokemon(t, venusaurBase, 50, moveGrowl)
	state := getSimpleState(t, player, opponent, 11, 12)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hit, found := lo.Find(outcome.Hits, func(h HitRecord) bool {
		return h.Side == SIDE_PLAYER && !h.Missed
	})
	if !found {
		t.Fatal("expected the attack to land")
	}

	attacker := state.Side(SIDE_PLAYER).ActivePokemon()
	wantHp := int(attacker.MaxHp) - hit.Damage*25/100
	if int(attacker.Hp) != wantHp {
		t.Fatalf("expected %d hp after recoil, got %d", wantHp, attacker.Hp)
	}
}

func TestDrainHeals(t *testing.T) {
	gigaDrain := MoveData{
		Name: "giga-drain", Type: TYPENAME_GRASS, Category: DAMAGETYPE_SPECIAL,
		Power: 75, Accuracy: 100, DrainPercent: 50,
	}

	player := buildTestPokemon(t, venusaurBase, 50, gigaDrain)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	state := getSimpleState(t, player, opponent, 13, 14)

	attacker := state.Side(SIDE_PLAYER).ActivePokemon()
	attacker.Hp = attacker.MaxHp / 2
	startHp := int(attacker.Hp)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hit, found := lo.Find(outcome.Hits, func(h HitRecord) bool {
		return h.Side == SIDE_PLAYER && !h.Missed
	})
	if !found {
		t.Fatal("expected the attack to land")
	}

	wantHp := startHp + hit.Damage*50/100
	if int(attacker.Hp) != wantHp {
		t.Fatalf("expected %d hp after draining, got %d", wantHp, attacker.Hp)
	}
}

func TestFaintTriggersSwitchAndHazards(t *testing.T) {
	player := buildTestPokemon(t, charizardBase, 50, moveTackle)
	lead := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	backup := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)

	lead.Hp = 1

	state, err := NewBattleState([]Pokemon{player}, []Pokemon{lead, backup}, NewSeed(15, 16))
	if err != nil {
		t.Fatalf("failed to build battle state: %v", err)
	}

	state.Field.Sides[SIDE_OPPONENT].StealthRock = true

	resolver := NewTurnResolver(nil)
	if _, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opponentSide := state.Side(SIDE_OPPONENT)
	if opponentSide.ActiveSlots[0] != 1 {
		t.Fatalf("expected the backup to be sent out, active slot %d", opponentSide.ActiveSlots[0])
	}

	incoming := opponentSide.ActivePokemon()
	wantHp := incoming.MaxHp - incoming.MaxHp/8
	if incoming.Hp != wantHp {
		t.Fatalf("expected stealth rock to chip to %d hp, got %d", wantHp, incoming.Hp)
	}
}

func TestBattleEndsWhenPartyWipes(t *testing.T) {
	player := buildTestPokemon(t, charizardBase, 50, moveFlamethrower)
	opponent := buildTestPokemon(t, bulbasaurBase, 50, moveGrowl)
	opponent.Hp = 1

	state := getSimpleState(t, player, opponent, 17, 18)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !outcome.Over {
		t.Fatal("expected the battle to be over")
	}
	if outcome.Winner != SIDE_PLAYER {
		t.Fatalf("expected side %d to win, got %d", SIDE_PLAYER, outcome.Winner)
	}
	if state.GameOver() != SIDE_PLAYER {
		t.Fatalf("expected GameOver to agree, got %d", state.GameOver())
	}
}

func TestNoActionAgainstFaintedTarget(t *testing.T) {
	finalGambit := MoveData{
		Name: "final-gambit", Type: TYPENAME_FIGHTING, Category: DAMAGETYPE_SPECIAL,
		Accuracy: 100, FixedKind: FIXED_SACRIFICE,
	}
	gigaDrain := MoveData{
		Name: "giga-drain", Type: TYPENAME_GRASS, Category: DAMAGETYPE_SPECIAL,
		Power: 75, Accuracy: 100, DrainPercent: 50,
	}

	player := buildTestPokemon(t, charizardBase, 50, finalGambit)
	opponent := buildTestPokemon(t, venusaurBase, 50, gigaDrain)
	state := getSimpleState(t, player, opponent, 21, 22)

	resolver := NewTurnResolver(nil)
	outcome, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hp := state.Side(SIDE_PLAYER).ActivePokemon().Hp; hp != 0 {
		t.Fatalf("expected the attacker to faint to its own move, %d hp left", hp)
	}

	if lo.SomeBy(outcome.Hits, func(h HitRecord) bool { return h.Side == SIDE_OPPONENT }) {
		t.Fatal("expected the slower side's move to be skipped once its target fainted")
	}
	if !lo.Contains(outcome.Messages, "Venusaur has no target") {
		t.Fatalf("expected a no-target message, got %v", outcome.Messages)
	}
}

func TestSelfStatDropSecondary(t *testing.T) {
	superpower := MoveData{
		Name: "superpower", Type: TYPENAME_FIGHTING, Category: DAMAGETYPE_PHYSICAL,
		Power: 120, Accuracy: 100, Flags: []string{FLAG_CONTACT},
		StatChanges: []StatChange{
			{Stat: STAT_ATTACK, Change: -1, Self: true},
			{Stat: STAT_DEFENSE, Change: -1, Self: true},
		},
	}

	player := buildTestPokemon(t, charizardBase, 50, superpower)
	opponent := buildTestPokemon(t, venusaurBase, 50, moveVineWhip)
	state := getSimpleState(t, player, opponent, 23, 24)

	resolver := NewTurnResolver(nil)
	if _, err := resolver.ResolveTurn(&state, [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attacker := state.Side(SIDE_PLAYER).ActivePokemon()
	if attacker.Stages.Attack != -1 || attacker.Stages.Def != -1 {
		t.Fatalf("expected the drops to land on the user, stages %+v", attacker.Stages)
	}
	if got := state.Side(SIDE_OPPONENT).ActivePokemon().Stages.Def; got != 0 {
		t.Fatalf("expected the target's defense untouched, got stage %d", got)
	}
}

func TestTurnDeterminism(t *testing.T) {
	buildState := func() BattleState {
		a := buildTestPokemon(t, charizardBase, 50, moveFlamethrower, moveTackle)
		b := buildTestPokemon(t, bulbasaurBase, 50, moveTackle)
		c := buildTestPokemon(t, venusaurBase, 50, moveVineWhip, moveGrowl)
		d := buildTestPokemon(t, gengarBase, 50, moveFlamethrower)

		state, err := NewBattleState([]Pokemon{a, b}, []Pokemon{c, d}, NewSeed(99, 100))
		if err != nil {
			t.Fatalf("failed to build battle state: %v", err)
		}

		return state
	}

	stateA := buildState()
	stateB := buildState()

	resolver := NewTurnResolver(nil)
	actions := [2]Action{{SIDE_PLAYER, 0}, {SIDE_OPPONENT, 0}}

	for turn := 0; turn < 3; turn++ {
		outcomeA, errA := resolver.ResolveTurn(&stateA, actions)
		outcomeB, errB := resolver.ResolveTurn(&stateB, actions)

		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v, %v", errA, errB)
		}

		if !reflect.DeepEqual(outcomeA, outcomeB) {
			t.Fatalf("turn %d: outcomes diverged:\n%+v\n%+v", turn, outcomeA, outcomeB)
		}

		if outcomeA.Over {
			break
		}
	}

	if !reflect.DeepEqual(stateA, stateB) {
		t.Fatal("states diverged after identical turns from the same seed")
	}
}
