package circles

import (
	"fmt"
	"math"
)

// TurnDirection is the sense in which angles are traversed.
type TurnDirection int

const (
	Counterclockwise TurnDirection = iota
	Clockwise
)

func (d TurnDirection) String() string {
	switch d {
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return fmt.Sprintf("TurnDirection(%d)", int(d))
	}
}

// AngleIntervalConfig describes a sweep from From to To.
type AngleIntervalConfig struct {
	From      Angle
	To        Angle
	Step      Angle
	Direction TurnDirection
}

// AngleIntervals returns the angles met when turning from cfg.From to cfg.To
// in cfg.Direction, cfg.Step at a time. The result starts with From and
// ends with To; the last step may be shorter than Step.
func AngleIntervals(cfg AngleIntervalConfig) ([]Angle, error) {
	step := cfg.Step.Radians()
	if step <= 0 || cfg.Step.IsNaN() {
		return nil, fmt.Errorf("%w: %v", ErrZeroInterval, cfg.Step)
	}

	sweep := cfg.To.Sub(cfg.From)
	if cfg.Direction == Clockwise {
		sweep = cfg.From.Sub(cfg.To)
	}

	out := []Angle{cfg.From}
	for travelled := step; travelled < sweep.Radians()-EpsilonRadians; travelled += step {
		t := FromRadians(travelled)
		if cfg.Direction == Clockwise {
			out = append(out, cfg.From.Sub(t))
		} else {
			out = append(out, cfg.From.Add(t))
		}
	}
	if !out[len(out)-1].Equal(cfg.To) {
		out = append(out, cfg.To)
	}
	return out, nil
}

// InterpolateAngles returns steps evenly spaced angles from from to to,
// both included, travelling along the shorter arc.
func InterpolateAngles(from, to Angle, steps int) ([]Angle, error) {
	if steps < 3 {
		return nil, fmt.Errorf("%w: got %d, need at least 3", ErrTooFewSteps, steps)
	}

	delta := to.Radians() - from.Radians()
	if delta > math.Pi {
		delta -= twoPi
	} else if delta < -math.Pi {
		delta += twoPi
	}

	out := make([]Angle, steps)
	for i := range out {
		out[i] = FromRadians(from.Radians() + delta*float64(i)/float64(steps-1))
	}
	return out, nil
}
