// Package highscore keeps the top-five table and the persisted difficulty selection.
package highscore

import (
	"strconv"

	"github.com/lixenwraith/vi-pong/parameter"
)

const (
	MaxEntries = 5
	NameLength = 8
	EmptyName  = "--------"
)

// Entry is one table row
type Entry struct {
	Name  string `toml:"name"`
	Score int    `toml:"score"`
}

// Table is ordered best first; ties keep the earlier entry above
type Table struct {
	Entries    [MaxEntries]Entry
	Difficulty parameter.Difficulty
}

// Default returns an empty table with Medium selected
func Default() Table {
	var t Table
	for i := range t.Entries {
		t.Entries[i] = Entry{Name: EmptyName}
	}
	t.Difficulty = parameter.DifficultyMedium
	return t
}

// Qualifies reports whether score beats the last entry
func (t *Table) Qualifies(score int) bool {
	return score > t.Entries[MaxEntries-1].Score
}

// Rank returns the slot score would take, -1 if it does not place
func (t *Table) Rank(score int) int {
	for i, e := range t.Entries {
		if score > e.Score {
			return i
		}
	}
	return -1
}

// Add inserts name at its rank, shifting lower entries down and dropping the last
// Names are truncated to NameLength; returns the rank or -1
func (t *Table) Add(name string, score int) int {
	rank := t.Rank(score)
	if rank < 0 {
		return -1
	}

	copy(t.Entries[rank+1:], t.Entries[rank:MaxEntries-1])
	t.Entries[rank] = Entry{Name: truncateName(name), Score: score}
	return rank
}

// Line formats slot i for display as "1. NAME 11"
func (t *Table) Line(i int) string {
	e := t.Entries[i]
	return strconv.Itoa(i+1) + ". " + e.Name + " " + strconv.Itoa(e.Score)
}

// Scored returns the indices of entries with a non-zero score
func (t *Table) Scored() []int {
	idx := make([]int, 0, MaxEntries)
	for i, e := range t.Entries {
		if e.Score > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func truncateName(name string) string {
	if len(name) > NameLength {
		return name[:NameLength]
	}
	return name
}
