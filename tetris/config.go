package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Default dimensions of the play area.
const (
	DefaultCols       = 10
	DefaultRows       = 20
	DefaultHiddenRows = 2
	DefaultPreviews   = 1
)

// Dimension limits accepted by Config.Validate and Game.Resize.
const (
	MinCols = 4
	MaxCols = 255
	MinRows = 4
	MaxRows = 255
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidPreviews   = errors.New("invalid preview count")
)

// Config describes a game.
type Config struct {
	// Cols is the grid width.
	Cols int
	// Rows is the number of visible rows.
	Rows int
	// HiddenRows are buffer rows above the visible area.
	HiddenRows int
	// Previews is how many upcoming kinds are queued.
	Previews int
	// Randomizer picks upcoming kinds. Nil means NewRandom seeded from the clock.
	Randomizer Randomizer
	// DeferSpawn leaves the game in Landed or LineClear after a landing until
	// Spawn is called, instead of spawning the next piece immediately.
	DeferSpawn bool
}

// DefaultConfig returns the classic 10x20 board with two hidden rows and one
// preview.
func DefaultConfig() Config {
	return Config{
		Cols:       DefaultCols,
		Rows:       DefaultRows,
		HiddenRows: DefaultHiddenRows,
		Previews:   DefaultPreviews,
	}
}

// Validate checks dimensions and preview count.
func (c Config) Validate() error {
	if err := validateSize(c.Cols, c.Rows); err != nil {
		return err
	}
	if c.HiddenRows < 0 || c.HiddenRows > MaxRows {
		return fmt.Errorf("%w: %d hidden rows", ErrInvalidDimensions, c.HiddenRows)
	}
	if c.Previews < 1 || c.Previews > 8 {
		return fmt.Errorf("%w: %d", ErrInvalidPreviews, c.Previews)
	}
	return nil
}

func validateSize(cols, rows int) error {
	if cols < MinCols || cols > MaxCols {
		return fmt.Errorf("%w: %d columns, want %d..%d", ErrInvalidDimensions, cols, MinCols, MaxCols)
	}
	if rows < MinRows || rows > MaxRows {
		return fmt.Errorf("%w: %d rows, want %d..%d", ErrInvalidDimensions, rows, MinRows, MaxRows)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Randomizer == nil {
		c.Randomizer = NewRandom(uint64(time.Now().UnixNano()))
	}
	return c
}
