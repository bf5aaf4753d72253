package highscore

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/parameter"
)

// fileMagic tags a table file so foreign TOML is rejected
const fileMagic = "PONG"

// ErrNotFound is returned by Load when no table has been saved yet
var ErrNotFound = errors.New("high score file not found")

// tableDTO is the on-disk layout
type tableDTO struct {
	Magic      string  `toml:"magic"`
	Difficulty string  `toml:"difficulty"`
	Entries    []Entry `toml:"entry"`
}

// Store handles save/load of the table
type Store struct {
	Path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the table from disk
// On any failure the returned table is Default(), so callers can log and carry on
func (s *Store) Load() (Table, error) {
	var dto tableDTO

	md, err := toml.DecodeFile(s.Path, &dto)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), ErrNotFound
		}
		return Default(), errors.Wrapf(err, "decode %s", s.Path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.Errorf("%s: unknown key %s", s.Path, undecoded[0])
	}

	t, err := dto.table()
	if err != nil {
		return Default(), errors.Wrapf(err, "load %s", s.Path)
	}
	return t, nil
}

// Save writes the table atomically: temp file in the same directory, then rename
func (s *Store) Save(t Table) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(newTableDTO(t)); err != nil {
		return errors.Wrap(err, "encode high scores")
	}

	tmpFile, err := os.CreateTemp(dir, ".vi-pong-scores-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write high scores")
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close high scores")
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "replace %s", s.Path)
	}
	return nil
}

func newTableDTO(t Table) tableDTO {
	return tableDTO{
		Magic:      fileMagic,
		Difficulty: t.Difficulty.String(),
		Entries:    t.Entries[:],
	}
}

func (dto tableDTO) table() (Table, error) {
	if dto.Magic != fileMagic {
		return Table{}, errors.Errorf("bad magic %q", dto.Magic)
	}
	if len(dto.Entries) != MaxEntries {
		return Table{}, errors.Errorf("want %d entries, got %d", MaxEntries, len(dto.Entries))
	}

	d, ok := parameter.ParseDifficulty(dto.Difficulty)
	if !ok {
		return Table{}, errors.Errorf("unknown difficulty %q", dto.Difficulty)
	}

	t := Table{Difficulty: d}
	for i, e := range dto.Entries {
		if e.Score < 0 {
			return Table{}, errors.Errorf("entry %d: negative score %d", i+1, e.Score)
		}
		t.Entries[i] = Entry{Name: truncateName(e.Name), Score: e.Score}
	}
	return t, nil
}
