package parameter

import "strings"

// Difficulty selects an AI profile
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard

	difficultyCount
)

// AIDeadZone is the pixel tolerance inside which the AI paddle holds still
const AIDeadZone = 2

// AIPredictionHorizon caps the frames-to-arrival estimate
const AIPredictionHorizon = 128

// Profile is an immutable AI tuning preset
type Profile struct {
	MaxSpeed       int // Max pixels AI can move per frame
	ErrorMargin    int // Random error in prediction, pixels
	UpdateInterval int // Frames between target recalculation
}

var profiles = [difficultyCount]Profile{
	DifficultyEasy:   {MaxSpeed: 3, ErrorMargin: 40, UpdateInterval: 20},
	DifficultyMedium: {MaxSpeed: 4, ErrorMargin: 24, UpdateInterval: 12},
	DifficultyHard:   {MaxSpeed: 6, ErrorMargin: 8, UpdateInterval: 6},
}

var difficultyNames = [difficultyCount]string{"EASY", "MEDIUM", "HARD"}

// Normalize maps out-of-range values to Medium
func (d Difficulty) Normalize() Difficulty {
	if d < DifficultyEasy || d >= difficultyCount {
		return DifficultyMedium
	}
	return d
}

func (d Difficulty) String() string {
	return difficultyNames[d.Normalize()]
}

// ProfileFor returns the preset for d, Medium when d is out of range
func ProfileFor(d Difficulty) Profile {
	return profiles[d.Normalize()]
}

// Difficulties lists the selectable levels in menu order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty accepts a name ("easy") or a menu digit ("1"); ok is false for anything else
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, true
	case "medium", "2":
		return DifficultyMedium, true
	case "hard", "3":
		return DifficultyHard, true
	}
	return DifficultyMedium, false
}
