package concentration

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Concentration aplica la ley de decaimiento de primer orden: dose * e^(-k t).
func Concentration(t, dose, eliminationRate float64) float64 {
	return dose * math.Exp(-eliminationRate*t)
}

// SampleCurve evalúa la concentración en SampleCount puntos equiespaciados
// sobre [TimeStart, TimeEnd], incluyendo ambos extremos.
func SampleCurve(p DoseParameters) (Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	last := p.SampleCount - 1
	step := (p.TimeEnd - p.TimeStart) / float64(last)

	out := make(Curve, p.SampleCount)
	for i := range out {
		t := p.TimeStart + float64(i)*step
		if i == last {
			t = p.TimeEnd
		}
		out[i] = Point{
			Time:          t,
			Concentration: Concentration(t, p.Dose, p.EliminationRate),
		}
	}
	return out, nil
}

// TotalEffect integra C(t) sobre la ventana de tiempo (área bajo la curva).
// Con k != 0 usa la forma cerrada; con k == 0 cae a cuadratura.
func TotalEffect(p DoseParameters) (float64, error) {
	if err := p.validateWindow(); err != nil {
		return 0, err
	}

	k := p.EliminationRate
	if k == 0 {
		return TotalEffectQuadrature(p)
	}

	// dose/k * (e^(-k a) - e^(-k b)), factorizado para no perder precisión con k chico.
	width := p.TimeEnd - p.TimeStart
	return p.Dose / k * math.Exp(-k*p.TimeStart) * -math.Expm1(-k*width), nil
}

// TotalEffectQuadrature integra numéricamente, sin forma cerrada.
//
// Se integra la forma normalizada e^(-|k| u) sobre [0, ancho], anclada en el extremo
// donde la curva es máxima (start si decae, end si crece), y se escala por
// dose * e^(-k ancla). Así los nodos nunca caen todos en la cola subnormal.
func TotalEffectQuadrature(p DoseParameters) (float64, error) {
	if err := p.validateWindow(); err != nil {
		return 0, err
	}

	k := p.EliminationRate
	width := p.TimeEnd - p.TimeStart
	if k == 0 {
		f := func(t float64) float64 {
			return Concentration(t, p.Dose, k)
		}
		return Integrate(f, p.TimeStart, p.TimeEnd), nil
	}
	if width == 0 {
		return 0, nil
	}

	anchor := p.TimeStart
	if k < 0 {
		anchor = p.TimeEnd
	}
	rate := math.Abs(k)
	g := func(u float64) float64 {
		return math.Exp(-rate * u)
	}

	segs := decaySegments(width, 1/rate)
	head := quad.Fixed(g, segs[0][0], segs[0][1], legendrePoints, nil, 0)
	tol := relTolerance * head / float64(len(segs))

	budget := maxIntervals
	area := 0.0
	for _, s := range segs {
		area += integrateAbs(g, s[0], s[1], tol, &budget)
	}
	return p.Dose * math.Exp(-k*anchor) * area, nil
}

// Evaluate arma el Plot completo: curva muestreada + efecto total.
func Evaluate(p DoseParameters, method IntegrationMethod) (Plot, error) {
	curve, err := SampleCurve(p)
	if err != nil {
		return Plot{}, err
	}

	var total float64
	switch method {
	case MethodQuadrature:
		total, err = TotalEffectQuadrature(p)
	default:
		total, err = TotalEffect(p)
	}
	if err != nil {
		return Plot{}, err
	}

	return Plot{
		Params:      p,
		Curve:       curve,
		TotalEffect: total,
	}, nil
}
