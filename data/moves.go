package data

import (
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/1400073/pokemon-project/battle"
)

type moveFile struct {
	Moves map[string]moveEntry `yaml:"moves"`
}

type moveEntry struct {
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Power    int    `yaml:"power"`
	Accuracy int    `yaml:"accuracy"`
	Priority int    `yaml:"priority"`

	MinHits int `yaml:"min_hits"`
	MaxHits int `yaml:"max_hits"`

	Flags []string `yaml:"flags"`

	Ohko        bool   `yaml:"ohko"`
	Fixed       string `yaml:"fixed"`
	FixedAmount int    `yaml:"fixed_amount"`

	Recoil int `yaml:"recoil"`
	Drain  int `yaml:"drain"`

	Ailment       string `yaml:"ailment"`
	AilmentChance int    `yaml:"ailment_chance"`

	StatChanges []statChangeEntry `yaml:"stat_changes"`
	StatChance  int               `yaml:"stat_chance"`

	FlinchChance    int  `yaml:"flinch_chance"`
	HighCrit        bool `yaml:"high_crit"`
	TargetDefHalved bool `yaml:"target_def_halved"`
}

type statChangeEntry struct {
	Stat   string `yaml:"stat"`
	Change int    `yaml:"change"`
	Self   bool   `yaml:"self"`
}

var ailmentNames = map[string]int{
	"":       battle.STATUS_NONE,
	"sleep":  battle.STATUS_SLEEP,
	"para":   battle.STATUS_PARA,
	"freeze": battle.STATUS_FROZEN,
	"burn":   battle.STATUS_BURN,
	"poison": battle.STATUS_POISON,
	"toxic":  battle.STATUS_TOXIC,
}

var fixedKinds = map[string]int{
	"":          battle.FIXED_NONE,
	"level":     battle.FIXED_LEVEL,
	"constant":  battle.FIXED_CONSTANT,
	"half-hp":   battle.FIXED_HALF_HP,
	"sacrifice": battle.FIXED_SACRIFICE,
}

// LoadMoves reads the YAML move database. Every entry is validated up
// front so a bad row fails the load instead of a battle.
func LoadMoves(r io.Reader) (map[string]battle.MoveData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file moveFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	moves := make(map[string]battle.MoveData, len(file.Moves))
	for name, entry := range file.Moves {
		move, err := entry.toMove(name)
		if err != nil {
			return nil, err
		}

		moves[name] = move
	}

	log.Debug().Int("count", len(moves)).Msg("loaded move database")

	return moves, nil
}

func (e moveEntry) toMove(name string) (battle.MoveData, error) {
	if e.Type == "" {
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "type"}
	}

	switch e.Category {
	case battle.DAMAGETYPE_PHYSICAL, battle.DAMAGETYPE_SPECIAL, battle.DAMAGETYPE_STATUS:
	default:
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "category"}
	}

	fixedKind, ok := fixedKinds[e.Fixed]
	if !ok {
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "fixed kind"}
	}

	ailment, ok := ailmentNames[e.Ailment]
	if !ok {
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "ailment"}
	}

	if e.Category != battle.DAMAGETYPE_STATUS && e.Power <= 0 &&
		fixedKind == battle.FIXED_NONE && !e.Ohko {
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "power"}
	}

	changes := make([]battle.StatChange, 0, len(e.StatChanges))
	for _, change := range e.StatChanges {
		changes = append(changes, battle.StatChange{Stat: change.Stat, Change: change.Change, Self: change.Self})
	}

	return battle.MoveData{
		Name:            name,
		Type:            e.Type,
		Category:        e.Category,
		Power:           e.Power,
		Accuracy:        e.Accuracy,
		Priority:        e.Priority,
		MinHits:         e.MinHits,
		MaxHits:         e.MaxHits,
		Flags:           e.Flags,
		OHKO:            e.Ohko,
		FixedKind:       fixedKind,
		FixedAmount:     e.FixedAmount,
		RecoilPercent:   e.Recoil,
		DrainPercent:    e.Drain,
		Ailment:         ailment,
		AilmentChance:   e.AilmentChance,
		StatChanges:     changes,
		StatChance:      e.StatChance,
		FlinchChance:    e.FlinchChance,
		HighCrit:        e.HighCrit,
		TargetDefHalved: e.TargetDefHalved,
	}, nil
}

type changesFile struct {
	Changes []changeEntry `yaml:"changes"`
}

type changeEntry struct {
	Move     string `yaml:"move"`
	Power    *int   `yaml:"power"`
	Accuracy *int   `yaml:"accuracy"`
	Priority *int   `yaml:"priority"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
}

// ApplyMoveChanges patches the move database with the ruleset's change
// list. A change naming an unknown move is an error, since it means the
// base database is missing a row the ruleset expects.
func ApplyMoveChanges(moves map[string]battle.MoveData, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var file changesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	for _, change := range file.Changes {
		move, ok := moves[change.Move]
		if !ok {
			return IncompleteDataError{Kind: "move", Name: change.Move, Missing: "base entry for change"}
		}

		if change.Power != nil {
			move.Power = *change.Power
		}
		if change.Accuracy != nil {
			move.Accuracy = *change.Accuracy
		}
		if change.Priority != nil {
			move.Priority = *change.Priority
		}
		if change.Type != "" {
			move.Type = change.Type
		}
		if change.Category != "" {
			move.Category = change.Category
		}

		moves[change.Move] = move

		log.Debug().Str("move", change.Move).Msg("applied move change")
	}

	return nil
}
