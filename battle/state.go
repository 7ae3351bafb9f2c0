package battle

import (
	"errors"
	"math/rand/v2"

	"github.com/samber/lo"
)

const (
	SIDE_PLAYER   = 0
	SIDE_OPPONENT = 1
)

var ErrEmptyParty = errors.New("side needs at least one pokemon")

// SideState is one trainer's half of the battle. ActiveSlots is shaped
// for two on-field pokemon; slot 1 stays at -1 in singles.
type SideState struct {
	Name        string
	Party       []Pokemon
	ActiveSlots [2]int
}

func (s *SideState) ActivePokemon() *Pokemon {
	index := s.ActiveSlots[0]
	if index < 0 || index >= len(s.Party) {
		return nil
	}

	return &s.Party[index]
}

func (s *SideState) SetActive(index int) {
	s.ActiveSlots[0] = index
}

func (s SideState) Defeated() bool {
	return !lo.SomeBy(s.Party, func(p Pokemon) bool {
		return p.Alive()
	})
}

// FirstHealthy returns the index of the first living party member other
// than exclude, or -1.
func (s SideState) FirstHealthy(exclude int) int {
	for i, p := range s.Party {
		if i != exclude && p.Alive() {
			return i
		}
	}

	return -1
}

// BattleState owns everything a turn mutates, including the RNG seed.
// Cloning the struct clones the random stream with it, which is what
// makes replays byte-for-byte reproducible.
type BattleState struct {
	Sides [2]SideState
	Field FieldState
	Turn  int

	RngSource rand.PCG
}

func NewBattleState(playerParty []Pokemon, opponentParty []Pokemon, seed rand.PCG) (BattleState, error) {
	if len(playerParty) == 0 || len(opponentParty) == 0 {
		return BattleState{}, ErrEmptyParty
	}

	state := BattleState{
		Sides: [2]SideState{
			{Name: "player", Party: playerParty, ActiveSlots: [2]int{0, -1}},
			{Name: "opponent", Party: opponentParty, ActiveSlots: [2]int{0, -1}},
		},
		Turn:      1,
		RngSource: seed,
	}

	return state, nil
}

// CreateRng hands out the battle's single random stream. Every draw
// advances RngSource in place.
func (b *BattleState) CreateRng() *rand.Rand {
	return CreateRNG(&b.RngSource)
}

func (b *BattleState) Side(index int) *SideState {
	return &b.Sides[index]
}

func (b *BattleState) OpposingSide(index int) *SideState {
	return &b.Sides[1-index]
}

// GameOver returns the winning side index, or -1 while the battle is
// still going.
func (b *BattleState) GameOver() int {
	if b.Sides[SIDE_PLAYER].Defeated() {
		return SIDE_OPPONENT
	}
	if b.Sides[SIDE_OPPONENT].Defeated() {
		return SIDE_PLAYER
	}

	return -1
}
