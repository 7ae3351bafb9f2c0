package battle

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrNoMoves         = errors.New("pokemon needs at least one move")
	ErrTooManyMoves    = errors.New("pokemon can know at most four moves")
	ErrMissingBase     = errors.New("pokemon needs a species")
	ErrUnlearnableMove = errors.New("pokemon can't learn that move")
)

// PokeBuilder assembles a battle-ready Pokemon. Build fails rather than
// producing a pokemon that the resolver cannot act with.
type PokeBuilder struct {
	poke Pokemon
}

func NewPokeBuilder(base *Species) *PokeBuilder {
	return &PokeBuilder{
		poke: Pokemon{
			Base:   base,
			Level:  50,
			Nature: NATURE_HARDY,
		},
	}
}

func (pb *PokeBuilder) SetLevel(level uint) *PokeBuilder {
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}

	pb.poke.Level = level
	return pb
}

func (pb *PokeBuilder) SetNickname(nickname string) *PokeBuilder {
	pb.poke.Nickname = nickname
	return pb
}

func (pb *PokeBuilder) SetNature(nature Nature) *PokeBuilder {
	pb.poke.Nature = nature
	return pb
}

func (pb *PokeBuilder) SetAbility(ability string) *PokeBuilder {
	pb.poke.Ability = ability
	return pb
}

func (pb *PokeBuilder) SetItem(item string) *PokeBuilder {
	pb.poke.Item = item
	return pb
}

func (pb *PokeBuilder) SetMoves(moves ...MoveData) *PokeBuilder {
	pb.poke.Moves = lo.Filter(moves, func(m MoveData, _ int) bool {
		return !m.IsNil()
	})

	return pb
}

func (pb *PokeBuilder) Build() (Pokemon, error) {
	if pb.poke.Base == nil {
		return Pokemon{}, ErrMissingBase
	}
	if len(pb.poke.Moves) == 0 {
		return Pokemon{}, ErrNoMoves
	}
	if len(pb.poke.Moves) > 4 {
		return Pokemon{}, ErrTooManyMoves
	}

	for _, move := range pb.poke.Moves {
		if !pb.poke.Base.CanLearn(move.Name) {
			return Pokemon{}, fmt.Errorf("%w: %s", ErrUnlearnableMove, move.Name)
		}
	}

	maxHp, err := ComputeStat(STAT_HP, pb.poke.Base.Stats.Hp, pb.poke.Level, pb.poke.Nature, 0)
	if err != nil {
		return Pokemon{}, err
	}

	pb.poke.MaxHp = uint(maxHp)
	pb.poke.Hp = pb.poke.MaxHp

	return pb.poke, nil
}
