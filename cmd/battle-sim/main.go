package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/1400073/pokemon-project/battle"
	"github.com/1400073/pokemon-project/data"
)

//go:embed data
var dataFiles embed.FS

var termWidth, _, _ = term.GetSize(int(os.Stdout.Fd()))

type config struct {
	PlayerName string
	Debug      bool
	Seed1      uint64
	Seed2      uint64
}

const configPath = "battle-sim.json"

type teamEntry struct {
	species string
	moves   []string
}

var playerTeam = []teamEntry{
	{"charizard", []string{"flamethrower", "air-slash", "dragon-claw", "swords-dance"}},
	{"blastoise", []string{"surf", "ice-beam", "body-slam", "shell-smash"}},
	{"pikachu", []string{"thunderbolt", "quick-attack", "thunder-wave", "iron-tail"}},
}

var opponentTeam = []teamEntry{
	{"venusaur", []string{"giga-drain", "sludge-bomb", "toxic", "earthquake"}},
	{"gengar", []string{"shadow-ball", "sludge-bomb", "thunderbolt", "hypnosis"}},
	{"snorlax", []string{"body-slam", "earthquake", "crunch", "toxic"}},
}

func main() {
	cfg := loadConfig(configPath)

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	fileWriter := zerolog.ConsoleWriter{Out: rollingFileWriter{path: "battle-sim.log", maxSize: 1 << 20}, NoColor: true}
	log.Logger = zerolog.New(fileWriter).With().Timestamp().Caller().Logger().Level(level)

	if cfg.Debug {
		battle.SetInternalLogger(funcr.New(func(prefix, args string) {
			log.Debug().Str("source", prefix).Msg(args)
		}, funcr.Options{Verbosity: 2}))
	}

	registry := loadRegistry(dataFiles)

	seed := battle.NewSeed(cfg.Seed1, cfg.Seed2)
	if cfg.Seed1 == 0 && cfg.Seed2 == 0 {
		seed = battle.CreateRandomStateSeed()
	}

	state, err := battle.NewBattleState(buildTeam(registry, playerTeam), buildTeam(registry, opponentTeam), seed)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't set up the battle")
	}

	env := battle.NewEnvironment(&state, nil, nil)

	if _, err := tea.NewProgram(newModel(env, cfg.PlayerName), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("error running program")
	}
}

func loadConfig(path string) config {
	cfg := config{PlayerName: "Player"}

	contents, err := os.ReadFile(path)
	if err != nil {
		raw, err := json.Marshal(cfg)
		if err == nil {
			if err := os.WriteFile(path, raw, 0666); err != nil {
				log.Err(err).Msg("couldn't write default config")
			}
		}

		return cfg
	}

	if err := json.Unmarshal(contents, &cfg); err != nil {
		log.Err(err).Msg("couldn't parse config, using defaults")
		return config{PlayerName: "Player"}
	}

	if cfg.PlayerName == "" {
		cfg.PlayerName = "Player"
	}

	return cfg
}

func loadRegistry(files fs.FS) *data.Registry {
	speciesFile := mustOpen(files, "data/species.csv")
	defer speciesFile.Close()

	species, err := data.LoadSpecies(speciesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load species table")
	}

	movesFile := mustOpen(files, "data/moves.yaml")
	defer movesFile.Close()

	moves, err := data.LoadMoves(movesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load move database")
	}

	changesFile := mustOpen(files, "data/changes.yaml")
	defer changesFile.Close()

	if err := data.ApplyMoveChanges(moves, changesFile); err != nil {
		log.Fatal().Err(err).Msg("couldn't apply ruleset move changes")
	}

	abilitiesFile := mustOpen(files, "data/abilities.yaml")
	defer abilitiesFile.Close()

	abilities, err := data.LoadAbilities(abilitiesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load ability lists")
	}

	data.AttachAbilities(species, abilities)

	learnsetsFile := mustOpen(files, "data/learnsets.yaml")
	defer learnsetsFile.Close()

	learnsets, err := data.LoadLearnsets(learnsetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load learnsets")
	}

	data.AttachLearnsets(species, learnsets)

	return data.NewRegistry(species, moves)
}

func mustOpen(files fs.FS, path string) fs.File {
	file, err := files.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("couldn't open data file")
	}

	return file
}

func buildTeam(registry *data.Registry, team []teamEntry) []battle.Pokemon {
	var party []battle.Pokemon

	for _, entry := range team {
		species, err := registry.Species(entry.species)
		if err != nil {
			log.Fatal().Err(err).Msg("team references missing species")
		}

		moves := make([]battle.MoveData, 0, len(entry.moves))
		for _, moveName := range entry.moves {
			move, err := registry.Move(moveName)
			if err != nil {
				log.Fatal().Err(err).Msg("team references missing move")
			}

			moves = append(moves, move)
		}

		builder := battle.NewPokeBuilder(species).SetLevel(50).SetMoves(moves...)
		if len(species.Abilities) > 0 {
			builder.SetAbility(species.Abilities[0])
		}

		poke, err := builder.Build()
		if err != nil {
			log.Fatal().Err(err).Str("species", entry.species).Msg("couldn't build team member")
		}

		party = append(party, poke)
	}

	return party
}
