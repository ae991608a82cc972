package concentration

import (
	"fmt"
	"math"
)

// DoseParameters son los cinco valores escalares que definen una curva.
// Se construye de nuevo en cada pedido de plot y se pasa por valor.
type DoseParameters struct {
	Dose            float64 // mg
	EliminationRate float64 // por hora
	TimeStart       float64 // horas
	TimeEnd         float64 // horas
	SampleCount     int     // >= 2
}

// Point es una muestra (t, C(t)).
type Point struct {
	Time          float64
	Concentration float64
}

// Curve es la secuencia ordenada de muestras, de largo SampleCount.
type Curve []Point

func (c Curve) Times() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Time
	}
	return out
}

func (c Curve) Concentrations() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Concentration
	}
	return out
}

// IntegrationMethod elige cómo se calcula el efecto total.
// @Enum closed_form, quadrature
type IntegrationMethod string

const (
	MethodClosedForm IntegrationMethod = "closed_form"
	MethodQuadrature IntegrationMethod = "quadrature"
)

func ParseMethod(s string) (IntegrationMethod, error) {
	switch IntegrationMethod(s) {
	case "", MethodClosedForm:
		return MethodClosedForm, nil
	case MethodQuadrature:
		return MethodQuadrature, nil
	default:
		return "", fmt.Errorf("unknown integration method %q", s)
	}
}

// Plot agrupa todo lo que necesita el render: parámetros, curva y efecto total.
type Plot struct {
	Params      DoseParameters
	Curve       Curve
	TotalEffect float64
}

// TotalEffectLabel es la leyenda del área sombreada (dos decimales).
func (p Plot) TotalEffectLabel() string {
	return fmt.Sprintf("Total Effect = %.2f", p.TotalEffect)
}

// Finite indica si todos los valores son representables (sin NaN ni Inf).
// Entradas como "inf" o tasas muy negativas producen curvas no finitas.
func (p Plot) Finite() bool {
	if !isFinite(p.TotalEffect) {
		return false
	}
	for _, pt := range p.Curve {
		if !isFinite(pt.Time) || !isFinite(pt.Concentration) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
