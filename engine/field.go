package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidField is returned when a field cannot host any spawn column
var ErrInvalidField = errors.New("invalid play field")

// Field is the play area in field units; Height is the fail boundary
type Field struct {
	Width  float64
	Height float64
	Margin float64
}

// Validate checks that at least one spawn column exists between the margins
func (f Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidField, f.Width, f.Height)
	}
	if f.Margin < 0 || f.Width-2*f.Margin < 1 {
		return fmt.Errorf("%w: margin %g leaves no spawn column in width %g", ErrInvalidField, f.Margin, f.Width)
	}
	return nil
}

// SpawnX returns a uniformly random column in [Margin, Width-Margin)
func (f Field) SpawnX(rng *rand.Rand) float64 {
	return f.Margin + rng.Float64()*(f.Width-2*f.Margin)
}
