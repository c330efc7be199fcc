package bionic

import (
	"fmt"
	"strings"
)

// Intensity is the three-level knob used for both fixation and saccade.
type Intensity int

const (
	Low Intensity = iota
	Medium
	High
)

func (i Intensity) String() string {
	switch i {
	case Low:
		return "l"
	case Medium:
		return "m"
	case High:
		return "h"
	default:
		return "unknown"
	}
}

// ParseIntensity accepts l|m|h and low|medium|high, case-insensitive.
func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return Low, nil
	case "m", "medium", "med":
		return Medium, nil
	case "h", "high":
		return High, nil
	default:
		return 0, fmt.Errorf("%w: intensity %q (want l, m or h)", ErrConfig, s)
	}
}

// Set and Type let an Intensity be used directly as a pflag value.
func (i *Intensity) Set(s string) error {
	v, err := ParseIntensity(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i *Intensity) Type() string { return "l|m|h" }

var fixationRatios = map[Intensity]float64{
	Low:    0.3,
	Medium: 0.5,
	High:   0.7,
}

// Saccade intensity is inverted: a higher intensity means a shorter cycle.
var cycleLengths = map[Intensity]int{
	High:   1,
	Medium: 2,
	Low:    3,
}

// FixationRatio maps a fixation intensity to the emphasized fraction of a word.
func FixationRatio(i Intensity) (float64, error) {
	r, ok := fixationRatios[i]
	if !ok {
		return 0, fmt.Errorf("%w: fixation intensity %d", ErrConfig, int(i))
	}
	return r, nil
}

// CycleLength maps a saccade intensity to the number of words per cycle.
func CycleLength(i Intensity) (int, error) {
	n, ok := cycleLengths[i]
	if !ok {
		return 0, fmt.Errorf("%w: saccade intensity %d", ErrConfig, int(i))
	}
	return n, nil
}
