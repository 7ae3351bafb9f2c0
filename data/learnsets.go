package data

import (
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/1400073/pokemon-project/battle"
)

type learnsetFile struct {
	Learnsets map[string][]string `yaml:"learnsets"`
}

// LoadLearnsets reads the species to learnable-move mapping.
func LoadLearnsets(r io.Reader) (map[string][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file learnsetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	learnsets := make(map[string][]string, len(file.Learnsets))
	for name, list := range file.Learnsets {
		if len(list) == 0 {
			return nil, IncompleteDataError{Kind: "species", Name: name, Missing: "learnset"}
		}

		learnsets[strings.ToLower(name)] = list
	}

	log.Debug().Int("count", len(learnsets)).Msg("loaded learnsets")

	return learnsets, nil
}

// AttachLearnsets copies loaded learnsets onto the species records.
// Species without an entry are left unrestricted.
func AttachLearnsets(species map[string]*battle.Species, learnsets map[string][]string) {
	for name, entry := range species {
		entry.Learnset = learnsets[name]
	}
}
