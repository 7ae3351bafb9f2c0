package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/1400073/pokemon-project/battle"
)

// Column layout of species.csv:
// dex, name, type1, type2, hp, attack, defense, sp_attack, sp_defense, speed
const speciesColumns = 10

// LoadSpecies reads the species table. Names are keyed lowercase, with
// display casing applied to the stored record.
func LoadSpecies(r io.Reader) (map[string]*battle.Species, error) {
	reader := csv.NewReader(r)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, IncompleteDataError{Kind: "species", Name: "table", Missing: "rows"}
	}

	caser := cases.Title(language.English)
	species := make(map[string]*battle.Species, len(rows)-1)

	// rows[0] is the header
	for _, row := range rows[1:] {
		if len(row) < speciesColumns {
			return nil, IncompleteDataError{Kind: "species", Name: strings.Join(row, ","), Missing: "columns"}
		}

		name := strings.TrimSpace(row[1])
		if name == "" {
			return nil, IncompleteDataError{Kind: "species", Name: row[0], Missing: "name"}
		}
		if strings.TrimSpace(row[2]) == "" {
			return nil, IncompleteDataError{Kind: "species", Name: name, Missing: "type1"}
		}

		dex, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad dex number for %q: %w", name, err)
		}

		stats, err := parseStats(name, row[4:10])
		if err != nil {
			return nil, err
		}

		entry := &battle.Species{
			DexNumber: uint(dex),
			Name:      caser.String(name),
			Type1:     caser.String(strings.TrimSpace(row[2])),
			Type2:     caser.String(strings.TrimSpace(row[3])),
			Stats:     stats,
		}

		species[strings.ToLower(name)] = entry
	}

	log.Debug().Int("count", len(species)).Msg("loaded species table")

	return species, nil
}

func parseStats(name string, columns []string) (battle.Stats, error) {
	values := make([]uint, len(columns))
	for i, column := range columns {
		v, err := strconv.ParseUint(strings.TrimSpace(column), 10, 32)
		if err != nil {
			return battle.Stats{}, IncompleteDataError{Kind: "species", Name: name, Missing: "base stats"}
		}

		values[i] = uint(v)
	}

	return battle.Stats{
		Hp:       values[0],
		Attack:   values[1],
		Def:      values[2],
		SpAttack: values[3],
		SpDef:    values[4],
		Speed:    values[5],
	}, nil
}
