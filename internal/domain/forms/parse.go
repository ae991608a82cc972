package forms

import (
	"fmt"
	"strconv"
	"strings"

	"drug-concentration/internal/domain/concentration"
)

// Parse convierte los campos a DoseParameters.
// Solo valida tipos: los rangos los controla el modelo.
func (f Fields) Parse() (concentration.DoseParameters, error) {
	dose, err := parseFloat("dose", f.Dose)
	if err != nil {
		return concentration.DoseParameters{}, err
	}
	rate, err := parseFloat("elimination_rate", f.EliminationRate)
	if err != nil {
		return concentration.DoseParameters{}, err
	}
	start, err := parseFloat("time_start", f.TimeStart)
	if err != nil {
		return concentration.DoseParameters{}, err
	}
	end, err := parseFloat("time_end", f.TimeEnd)
	if err != nil {
		return concentration.DoseParameters{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(f.Intervals))
	if err != nil {
		return concentration.DoseParameters{}, fmt.Errorf("%w: intervals %q", ErrInvalidNumber, f.Intervals)
	}

	return concentration.DoseParameters{
		Dose:            dose,
		EliminationRate: rate,
		TimeStart:       start,
		TimeEnd:         end,
		SampleCount:     n,
	}, nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, raw)
	}
	return v, nil
}
