package gochart

import (
	"context"
	"fmt"
	"io"
	"math"

	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/ports/chart"

	gc "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	title      = "Drug Concentration Over Time"
	xAxisName  = "Time (hours)"
	yAxisName  = "Concentration"
	curveLabel = "Drug Concentration C(t)"
)

var (
	curveColor = drawing.ColorBlue
	areaColor  = drawing.Color{R: 128, G: 0, B: 128, A: 128} // purple, alpha 0.5
	gridColor  = drawing.Color{R: 210, G: 210, B: 210, A: 255}
)

// Renderer implementa chart.Renderer con go-chart.
type Renderer struct {
	Width  int
	Height int
}

func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

var _ chart.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(ctx context.Context, w io.Writer, plot concentration.Plot, format chart.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(plot.Curve) == 0 {
		return fmt.Errorf("%w: empty curve", chart.ErrUnrenderable)
	}
	if !plot.Finite() {
		return fmt.Errorf("%w: non-finite values", chart.ErrUnrenderable)
	}

	var provider gc.RendererProvider = gc.PNG
	if format == chart.FormatSVG {
		provider = gc.SVG
	}

	c := r.build(plot)
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("gochart: render: %w", err)
	}
	return nil
}

func (r *Renderer) build(plot concentration.Plot) gc.Chart {
	xs := plot.Curve.Times()
	ys := plot.Curve.Concentrations()

	xr := xRange(xs)
	yr := yRange(ys)

	grid := gc.Style{StrokeColor: gridColor, StrokeWidth: 1}

	c := gc.Chart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		Background: gc.Style{
			Padding: gc.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gc.XAxis{
			Name:           xAxisName,
			Range:          xr,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: gc.YAxis{
			Name:           yAxisName,
			Range:          yr,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []gc.Series{
			// Primero el área para que la línea quede encima.
			gc.ContinuousSeries{
				Name:    plot.TotalEffectLabel(),
				XValues: xs,
				YValues: ys,
				Style: gc.Style{
					StrokeColor: areaColor,
					StrokeWidth: 1,
					FillColor:   areaColor,
				},
			},
			gc.ContinuousSeries{
				Name:    curveLabel,
				XValues: xs,
				YValues: ys,
				Style: gc.Style{
					StrokeColor: curveColor,
					StrokeWidth: 2,
				},
			},
		},
	}
	c.Elements = []gc.Renderable{gc.Legend(&c)}
	return c
}

// xRange fija el eje de tiempo; con ventana de ancho cero se abre ±1.
func xRange(xs []float64) *gc.ContinuousRange {
	lo, hi := bounds(xs)
	if hi == lo {
		lo, hi = lo-1, hi+1
	}
	return &gc.ContinuousRange{Min: lo, Max: hi}
}

// yRange siempre incluye el 0 para que el relleno llegue al eje.
func yRange(ys []float64) *gc.ContinuousRange {
	lo, hi := bounds(ys)
	lo = math.Min(lo, 0)
	hi = math.Max(hi, 0)
	if hi == lo {
		hi = lo + 1
	}
	return &gc.ContinuousRange{Min: lo, Max: hi}
}

func bounds(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
