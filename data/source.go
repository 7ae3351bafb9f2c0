// Package data loads the species table, the move database and the
// ruleset's move-change overlay, and validates all of it loudly. Holes
// in the data surface as IncompleteDataError instead of zero values
// leaking into battle math.
package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/1400073/pokemon-project/battle"
)

// IncompleteDataError reports a gap in the loaded data. Kind is "move"
// or "species".
type IncompleteDataError struct {
	Kind    string
	Name    string
	Missing string
}

func (e IncompleteDataError) Error() string {
	return fmt.Sprintf("incomplete %s data for %q: missing %s", e.Kind, e.Name, e.Missing)
}

// Source is what the battle layer consumes. Lookups fail loudly rather
// than returning partial records.
type Source interface {
	Move(name string) (battle.MoveData, error)
	Species(name string) (*battle.Species, error)
}

// Registry is an in-memory Source, immutable after construction.
type Registry struct {
	moves   map[string]battle.MoveData
	species map[string]*battle.Species
}

func NewRegistry(species map[string]*battle.Species, moves map[string]battle.MoveData) *Registry {
	return &Registry{moves: moves, species: species}
}

func (r *Registry) Move(name string) (battle.MoveData, error) {
	move, ok := r.moves[name]
	if !ok {
		return battle.MoveData{}, IncompleteDataError{Kind: "move", Name: name, Missing: "entire entry"}
	}

	return move, nil
}

func (r *Registry) Species(name string) (*battle.Species, error) {
	species, ok := r.species[name]
	if !ok {
		return nil, IncompleteDataError{Kind: "species", Name: name, Missing: "entire entry"}
	}

	return species, nil
}

func (r *Registry) SpeciesNames() []string {
	names := make([]string, 0, len(r.species))
	for name := range r.species {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// LoadDir builds a registry from a data directory holding species.csv,
// moves.yaml and an optional changes.yaml overlay.
func LoadDir(dir string) (*Registry, error) {
	speciesFile, err := os.Open(filepath.Join(dir, "species.csv"))
	if err != nil {
		return nil, err
	}
	defer speciesFile.Close()

	species, err := LoadSpecies(speciesFile)
	if err != nil {
		return nil, err
	}

	movesFile, err := os.Open(filepath.Join(dir, "moves.yaml"))
	if err != nil {
		return nil, err
	}
	defer movesFile.Close()

	moves, err := LoadMoves(movesFile)
	if err != nil {
		return nil, err
	}

	changesFile, err := os.Open(filepath.Join(dir, "changes.yaml"))
	if err == nil {
		defer changesFile.Close()

		if err := ApplyMoveChanges(moves, changesFile); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	abilitiesFile, err := os.Open(filepath.Join(dir, "abilities.yaml"))
	if err == nil {
		defer abilitiesFile.Close()

		abilities, err := LoadAbilities(abilitiesFile)
		if err != nil {
			return nil, err
		}

		AttachAbilities(species, abilities)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	learnsetsFile, err := os.Open(filepath.Join(dir, "learnsets.yaml"))
	if err == nil {
		defer learnsetsFile.Close()

		learnsets, err := LoadLearnsets(learnsetsFile)
		if err != nil {
			return nil, err
		}

		AttachLearnsets(species, learnsets)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	log.Info().Int("species", len(species)).Int("moves", len(moves)).Msg("data registry loaded")

	return NewRegistry(species, moves), nil
}
