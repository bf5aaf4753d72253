// Package config loads the TOML settings file and applies command-line overrides.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Frame rate bounds; the simulation is tuned for 50 Hz
const (
	DefaultFrameRate = 50
	MinFrameRate     = 10
	MaxFrameRate     = 240
)

// DefaultScoresPath is relative to the working directory
const DefaultScoresPath = "vi-pong.scores.toml"

// Config is the settings file layout
type Config struct {
	Difficulty   string `toml:"difficulty"`
	WinningScore int    `toml:"winning_score"`
	PaddleHeight int    `toml:"paddle_height"`
	Seed         uint32 `toml:"seed"`
	FrameRate    int    `toml:"frame_rate"`
	Sound        bool   `toml:"sound"`
	ScoresPath   string `toml:"scores_path"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Difficulty:   strings.ToLower(parameter.DifficultyMedium.String()),
		WinningScore: parameter.WinningScore,
		PaddleHeight: parameter.PaddleHeight,
		Seed:         vmath.DefaultSeed,
		FrameRate:    DefaultFrameRate,
		Sound:        true,
		ScoresPath:   DefaultScoresPath,
	}
}

// Load decodes path over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks every field against the playable range
func (c Config) Validate() error {
	if _, ok := parameter.ParseDifficulty(c.Difficulty); !ok {
		return errors.Errorf("difficulty %q: want easy, medium or hard", c.Difficulty)
	}
	if c.WinningScore < 1 || c.WinningScore > 99 {
		return errors.Errorf("winning_score %d: want 1..99", c.WinningScore)
	}
	// Taller than the play area below the score band makes the paddle unmissable
	maxHeight := parameter.FieldHeight - parameter.ScoreBand
	if c.PaddleHeight < 2 || c.PaddleHeight > maxHeight {
		return errors.Errorf("paddle_height %d: want 2..%d", c.PaddleHeight, maxHeight)
	}
	if c.FrameRate < MinFrameRate || c.FrameRate > MaxFrameRate {
		return errors.Errorf("frame_rate %d: want %d..%d", c.FrameRate, MinFrameRate, MaxFrameRate)
	}
	if strings.TrimSpace(c.ScoresPath) == "" {
		return errors.New("scores_path is empty")
	}
	return nil
}

// DifficultyLevel returns the parsed difficulty, Medium if unparseable
func (c Config) DifficultyLevel() parameter.Difficulty {
	d, _ := parameter.ParseDifficulty(c.Difficulty)
	return d
}

// Engine builds the match configuration
func (c Config) Engine() engine.Config {
	ec := engine.DefaultConfig()
	ec.Geometry.PaddleHeight = c.PaddleHeight
	ec.Rules.WinningScore = c.WinningScore
	ec.Difficulty = c.DifficultyLevel()
	ec.Seed = c.Seed
	return ec
}
