package concentration

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid range")

// InvalidRangeError indica parámetros con los que no se puede armar la curva.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: %s", e.Reason)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Validate controla lo mínimo para una curva bien formada.
func (p DoseParameters) Validate() error {
	if p.SampleCount < 2 {
		return &InvalidRangeError{Reason: fmt.Sprintf("sample count must be at least 2, got %d", p.SampleCount)}
	}
	return p.validateWindow()
}

// validateWindow solo mira el intervalo; la integral no depende de SampleCount.
func (p DoseParameters) validateWindow() error {
	if p.TimeEnd < p.TimeStart {
		return &InvalidRangeError{Reason: fmt.Sprintf("end time %g is before start time %g", p.TimeEnd, p.TimeStart)}
	}
	return nil
}
