package bionic

import "fmt"

// Config is the immutable styling configuration of a Styler.
type Config struct {
	FixationRatio float64
	CycleLength   int
	Contrast      bool
	// Coalesce merges adjacent graphemes of the same style into one escape
	// pair. Off by default: every grapheme gets its own pair.
	Coalesce bool
}

// NewConfig resolves the intensity enums into a validated Config.
func NewConfig(fixation, saccade Intensity, contrast bool) (Config, error) {
	ratio, err := FixationRatio(fixation)
	if err != nil {
		return Config{}, err
	}
	cycle, err := CycleLength(saccade)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{FixationRatio: ratio, CycleLength: cycle, Contrast: contrast}
	return cfg, cfg.Validate()
}

// DefaultConfig is fixation=m, saccade=h, contrast off.
func DefaultConfig() Config {
	cfg, _ := NewConfig(Medium, High, false)
	return cfg
}

func (c Config) Validate() error {
	// NaN fails both comparisons, so test for the valid range.
	if !(c.FixationRatio > 0 && c.FixationRatio <= 1) {
		return fmt.Errorf("%w: fixation ratio %v not in (0,1]", ErrConfig, c.FixationRatio)
	}
	if c.CycleLength < 1 {
		return fmt.Errorf("%w: cycle length %d < 1", ErrConfig, c.CycleLength)
	}
	return nil
}
