package battle

import "testing"

var charizardBase = &Species{
	DexNumber: 6,
	Name:      "Charizard",
	Type1:     TYPENAME_FIRE,
	Type2:     TYPENAME_FLYING,
	Stats:     Stats{Hp: 78, Attack: 84, Def: 78, SpAttack: 109, SpDef: 85, Speed: 100},
}

var venusaurBase = &Species{
	DexNumber: 3,
	Name:      "Venusaur",
	Type1:     TYPENAME_GRASS,
	Type2:     TYPENAME_POISON,
	Stats:     Stats{Hp: 80, Attack: 82, Def: 83, SpAttack: 100, SpDef: 100, Speed: 80},
}

var bulbasaurBase = &Species{
	DexNumber: 1,
	Name:      "Bulbasaur",
	Type1:     TYPENAME_GRASS,
	Type2:     TYPENAME_POISON,
	Stats:     Stats{Hp: 45, Attack: 49, Def: 49, SpAttack: 65, SpDef: 65, Speed: 45},
}

var gengarBase = &Species{
	DexNumber: 94,
	Name:      "Gengar",
	Type1:     TYPENAME_GHOST,
	Type2:     TYPENAME_POISON,
	Stats:     Stats{Hp: 60, Attack: 65, Def: 60, SpAttack: 130, SpDef: 75, Speed: 110},
}

var (
	moveTackle = MoveData{
		Name: "tackle", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_PHYSICAL,
		Power: 40, Accuracy: 100, Flags: []string{FLAG_CONTACT},
	}
	moveScratch = MoveData{
		Name: "scratch", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_PHYSICAL,
		Power: 40, Accuracy: 100, Flags: []string{FLAG_CONTACT},
	}
	moveFlamethrower = MoveData{
		Name: "flamethrower", Type: TYPENAME_FIRE, Category: DAMAGETYPE_SPECIAL,
		Power: 90, Accuracy: 100, Ailment: STATUS_BURN, AilmentChance: 10,
	}
	moveVineWhip = MoveData{
		Name: "vine-whip", Type: TYPENAME_GRASS, Category: DAMAGETYPE_SPECIAL,
		Power: 45, Accuracy: 100,
	}
	moveQuickAttack = MoveData{
		Name: "quick-attack", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_PHYSICAL,
		Power: 40, Accuracy: 100, Priority: 1, Flags: []string{FLAG_CONTACT},
	}
	moveGrowl = MoveData{
		Name: "growl", Type: TYPENAME_NORMAL, Category: DAMAGETYPE_STATUS,
		Accuracy: 100, Flags: []string{FLAG_SOUND},
		StatChanges: []StatChange{{Stat: STAT_ATTACK, Change: -1}},
	}
)

func buildTestPokemon(t *testing.T, base *Species, level uint, moves ...MoveData) Pokemon {
	t.Helper()

	poke, err := NewPokeBuilder(base).SetLevel(level).SetMoves(moves...).Build()
	if err != nil {
		t.Fatalf("failed to build %s: %v", base.Name, err)
	}

	return poke
}

func getSimpleState(t *testing.T, player Pokemon, opponent Pokemon, seed1 uint64, seed2 uint64) BattleState {
	t.Helper()

	state, err := NewBattleState([]Pokemon{player}, []Pokemon{opponent}, NewSeed(seed1, seed2))
	if err != nil {
		t.Fatalf("failed to build battle state: %v", err)
	}

	return state
}

func checkDamageRange(t *testing.T, gotMin int, gotMax int, wantMin int, wantMax int) {
	t.Helper()

	if gotMin != wantMin || gotMax != wantMax {
		t.Fatalf("expected damage interval (%d, %d), got (%d, %d)", wantMin, wantMax, gotMin, gotMax)
	}
}
