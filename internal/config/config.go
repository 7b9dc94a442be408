package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/kuba-backend/internal/entity"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players   Players `yaml:"players"`
	HideBoard bool    `yaml:"hide-board" env:"HIDE_BOARD"`
	Moves     []Move  `yaml:"moves"`
}

type Players struct {
	FirstName   string `yaml:"first-name" env:"FIRST_PLAYER_NAME" env-default:"PlayerA"`
	FirstColor  string `yaml:"first-color" env:"FIRST_PLAYER_COLOR" env-default:"W"`
	SecondName  string `yaml:"second-name" env:"SECOND_PLAYER_NAME" env-default:"PlayerB"`
	SecondColor string `yaml:"second-color" env:"SECOND_PLAYER_COLOR" env-default:"B"`
}

// Move is one scripted push. Direction is one of L, R, F or B.
type Move struct {
	Player    string `yaml:"player"`
	Row       int    `yaml:"row"`
	Col       int    `yaml:"col"`
	Direction string `yaml:"direction"`
}

// Load - reads the config file at path and applies environment overrides.
// With an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Players) PlayerPair() (entity.Player, entity.Player) {
	return entity.Player{Name: that.FirstName, Color: entity.Marble(that.FirstColor)},
		entity.Player{Name: that.SecondName, Color: entity.Marble(that.SecondColor)}
}

func (that *Config) ScriptedMoves() []entity.Move {
	moves := make([]entity.Move, 0, len(that.Moves))
	for _, move := range that.Moves {
		moves = append(moves, entity.Move{
			Player:     move.Player,
			Coordinate: entity.Coordinate{Row: move.Row, Col: move.Col},
			Direction:  entity.Direction(move.Direction),
		})
	}

	return moves
}
