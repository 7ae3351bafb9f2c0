package battle

// PokemonView is the public slice of a pokemon an agent is allowed to
// see.
type PokemonView struct {
	Name   string
	Level  uint
	Hp     uint
	MaxHp  uint
	Status int
	Stages StatStages
	Types  []string
}

type Observation struct {
	Turn     int
	Weather  int
	Terrain  int
	Player   PokemonView
	Opponent PokemonView
	Messages []string
}

type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
}

// BattleEnvironment wraps a battle in a step loop: the caller supplies
// the player's move index, the scorer plays the opposing side, and the
// resolver runs the turn. Reward is the swing in party HP fractions,
// plus or minus 1 on the terminal step.
type BattleEnvironment struct {
	State *BattleState

	resolver *TurnResolver
	scorer   *MoveScorer

	done   bool
	winner int
}

func NewEnvironment(state *BattleState, resolver *TurnResolver, scorer *MoveScorer) *BattleEnvironment {
	if resolver == nil {
		resolver = NewTurnResolver(nil)
	}
	if scorer == nil {
		scorer = NewMoveScorer(resolver.engine)
	}

	return &BattleEnvironment{State: state, resolver: resolver, scorer: scorer, winner: -1}
}

func (e *BattleEnvironment) Observe() Observation {
	obs := Observation{
		Turn:    e.State.Turn,
		Weather: e.State.Field.Weather,
		Terrain: e.State.Field.Terrain,
	}

	if p := e.State.Side(SIDE_PLAYER).ActivePokemon(); p != nil {
		obs.Player = viewOf(p)
	}
	if p := e.State.Side(SIDE_OPPONENT).ActivePokemon(); p != nil {
		obs.Opponent = viewOf(p)
	}

	return obs
}

// Step runs one full turn. Calling Step after the battle has ended
// returns an EnvironmentTerminatedError.
func (e *BattleEnvironment) Step(moveIndex int) (StepResult, error) {
	if e.done {
		return StepResult{}, EnvironmentTerminatedError{Winner: e.winner}
	}

	playerBefore := partyHpFraction(e.State.Side(SIDE_PLAYER))
	opponentBefore := partyHpFraction(e.State.Side(SIDE_OPPONENT))

	aiMove, err := e.scorer.ChooseMove(e.State, SIDE_OPPONENT, e.State.CreateRng())
	if err != nil {
		return StepResult{}, err
	}

	outcome, err := e.resolver.ResolveTurn(e.State, [2]Action{
		{Side: SIDE_PLAYER, MoveIndex: moveIndex},
		{Side: SIDE_OPPONENT, MoveIndex: aiMove},
	})
	if err != nil {
		return StepResult{}, err
	}

	reward := (opponentBefore - partyHpFraction(e.State.Side(SIDE_OPPONENT))) -
		(playerBefore - partyHpFraction(e.State.Side(SIDE_PLAYER)))

	if outcome.Over {
		e.done = true
		e.winner = outcome.Winner

		if outcome.Winner == SIDE_PLAYER {
			reward += 1
		} else {
			reward -= 1
		}
	}

	obs := e.Observe()
	obs.Messages = outcome.Messages

	return StepResult{Observation: obs, Reward: reward, Done: e.done}, nil
}

func (e *BattleEnvironment) Winner() (int, bool) {
	return e.winner, e.done
}

func viewOf(p *Pokemon) PokemonView {
	return PokemonView{
		Name:   p.Name(),
		Level:  p.Level,
		Hp:     p.Hp,
		MaxHp:  p.MaxHp,
		Status: p.Status,
		Stages: p.Stages,
		Types:  p.Types(),
	}
}

func partyHpFraction(side *SideState) float64 {
	if len(side.Party) == 0 {
		return 0
	}

	var total float64
	for _, p := range side.Party {
		total += float64(p.Hp) / float64(p.MaxHp)
	}

	return total / float64(len(side.Party))
}
