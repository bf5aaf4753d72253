package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// Flags holds the parsed command line
type Flags struct {
	ConfigPath string
	Debug      bool

	// Overrides, applied only when the flag was set
	difficulty string
	seed       uint
	frameRate  int
	mute       bool
	scoresPath string
	set        map[string]bool
}

// ParseFlags parses args (without the program name)
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "path to TOML settings file")
	fs.BoolVar(&f.Debug, "debug", false, "write logs to logs/vi-pong.log")
	fs.StringVar(&f.difficulty, "difficulty", "", "AI difficulty: easy, medium or hard")
	fs.UintVar(&f.seed, "seed", 0, "random seed for serve angles and AI error")
	fs.IntVar(&f.frameRate, "fps", 0, "frames per second")
	fs.BoolVar(&f.mute, "mute", false, "disable sound")
	fs.StringVar(&f.scoresPath, "scores", "", "high score file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// IsSet reports whether the named flag appeared on the command line
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}

// Resolve loads the file named by -config (or defaults) and applies the overrides
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = Load(f.ConfigPath); err != nil {
			return cfg, err
		}
	}

	if f.set["difficulty"] {
		cfg.Difficulty = f.difficulty
	}
	if f.set["seed"] {
		if uint64(f.seed) > uint64(^uint32(0)) {
			return cfg, errors.Errorf("-seed %d overflows 32 bits", f.seed)
		}
		cfg.Seed = uint32(f.seed)
	}
	if f.set["fps"] {
		cfg.FrameRate = f.frameRate
	}
	if f.set["mute"] {
		cfg.Sound = !f.mute
	}
	if f.set["scores"] {
		cfg.ScoresPath = f.scoresPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "flags")
	}
	return cfg, nil
}
