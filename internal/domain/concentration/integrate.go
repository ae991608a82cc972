package concentration

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	legendrePoints = 8
	relTolerance   = 1e-12

	// Toda subdivisión pasa por minDepth niveles antes de aceptar.
	minDepth = 3
	maxDepth = 30
	// Tope de tramos por integral; acota el tiempo de cualquier llamada.
	maxIntervals = 1 << 14
)

// Integrate calcula la integral de f sobre [a, b] con Gauss-Legendre adaptivo.
// La tolerancia es absoluta, relativa a una estimación gruesa de |f| en todo
// el intervalo, y se reparte a la mitad en cada bisección.
func Integrate(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	if a > b {
		return -Integrate(f, b, a)
	}

	budget := maxIntervals
	return integrateAbs(f, a, b, relTolerance*coarseScale(f, a, b), &budget)
}

// coarseScale suma |Fixed| sobre 2^minDepth tramos iguales.
func coarseScale(f func(float64) float64, a, b float64) float64 {
	const pieces = 1 << minDepth
	width := (b - a) / pieces
	scale := 0.0
	for i := 0; i < pieces; i++ {
		lo := a + float64(i)*width
		scale += math.Abs(quad.Fixed(f, lo, lo+width, legendrePoints, nil, 0))
	}
	return scale
}

func integrateAbs(f func(float64) float64, a, b, tol float64, budget *int) float64 {
	whole := quad.Fixed(f, a, b, legendrePoints, nil, 0)
	return bisect(f, a, b, whole, tol, 0, budget)
}

func bisect(f func(float64) float64, a, b, whole, tol float64, depth int, budget *int) float64 {
	m := a + (b-a)/2
	left := quad.Fixed(f, a, m, legendrePoints, nil, 0)
	right := quad.Fixed(f, m, b, legendrePoints, nil, 0)
	sum := left + right
	*budget -= 2

	// NaN/Inf no convergen nunca; se devuelven tal cual.
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return sum
	}
	if depth >= maxDepth || *budget <= 0 || m == a || m == b {
		return sum
	}
	if depth >= minDepth && math.Abs(sum-whole) <= tol {
		return sum
	}
	return bisect(f, a, m, left, tol/2, depth+1, budget) +
		bisect(f, m, b, right, tol/2, depth+1, budget)
}

// decaySegments parte [0, width] en tramos geométricos de la escala 1/rate:
// [0,s], [s,2s], [2s,4s], ... Más allá de maxDecayScales*s e^(-u/s) da 0 en float64.
func decaySegments(width, scale float64) [][2]float64 {
	const maxDecayScales = 1024

	segs := [][2]float64{{0, math.Min(scale, width)}}
	for lo := scale; lo < width && lo < maxDecayScales*scale; lo *= 2 {
		segs = append(segs, [2]float64{lo, math.Min(2*lo, width)})
	}
	return segs
}
