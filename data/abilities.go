package data

import (
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/1400073/pokemon-project/battle"
)

type abilityFile struct {
	Abilities map[string][]string `yaml:"abilities"`
}

// LoadAbilities reads the species to ability-list mapping.
func LoadAbilities(r io.Reader) (map[string][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file abilityFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	abilities := make(map[string][]string, len(file.Abilities))
	for name, list := range file.Abilities {
		if len(list) == 0 {
			return nil, IncompleteDataError{Kind: "species", Name: name, Missing: "abilities"}
		}

		abilities[strings.ToLower(name)] = list
	}

	log.Debug().Int("count", len(abilities)).Msg("loaded ability lists")

	return abilities, nil
}

// AttachAbilities copies loaded ability lists onto the species records.
// Species without an entry keep an empty list.
func AttachAbilities(species map[string]*battle.Species, abilities map[string][]string) {
	for name, entry := range species {
		entry.Abilities = abilities[name]
	}
}
