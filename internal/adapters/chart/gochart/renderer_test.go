package gochart

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/ports/chart"
)

func mustPlot(t *testing.T, p concentration.DoseParameters) concentration.Plot {
	t.Helper()
	plot, err := concentration.Evaluate(p, concentration.MethodClosedForm)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	return plot
}

func TestRender_PNG(t *testing.T) {
	plot := mustPlot(t, concentration.DoseParameters{Dose: 100, EliminationRate: 0.5, TimeStart: 0, TimeEnd: 10, SampleCount: 100})

	var buf bytes.Buffer
	if err := New(0, 0).Render(context.Background(), &buf, plot, chart.FormatPNG); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("expected PNG signature")
	}
}

func TestRender_SVG_ContainsLabels(t *testing.T) {
	plot := mustPlot(t, concentration.DoseParameters{Dose: 100, EliminationRate: 0.5, TimeStart: 0, TimeEnd: 10, SampleCount: 20})

	var buf bytes.Buffer
	if err := New(640, 480).Render(context.Background(), &buf, plot, chart.FormatSVG); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", title, xAxisName, curveLabel, "Total Effect = 198.65"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected svg to contain %q", want)
		}
	}
}

func TestRender_DegenerateInputsDoNotFail(t *testing.T) {
	cases := []concentration.DoseParameters{
		// ventana de ancho cero y dosis 0: línea plana en un solo instante
		{Dose: 0, EliminationRate: 0, TimeStart: 0, TimeEnd: 0, SampleCount: 2},
		// tasa cero: concentración constante
		{Dose: 50, EliminationRate: 0, TimeStart: 2, TimeEnd: 6, SampleCount: 10},
		// tasa negativa: crecimiento
		{Dose: 5, EliminationRate: -0.3, TimeStart: 0, TimeEnd: 12, SampleCount: 10},
		// dosis negativa
		{Dose: -10, EliminationRate: 0.2, TimeStart: 0, TimeEnd: 5, SampleCount: 5},
	}
	for _, p := range cases {
		var buf bytes.Buffer
		if err := New(400, 300).Render(context.Background(), &buf, mustPlot(t, p), chart.FormatPNG); err != nil {
			t.Fatalf("Render(%+v) error: %v", p, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("Render(%+v) produced no output", p)
		}
	}
}

func TestRender_RejectsNonFinite(t *testing.T) {
	plot := mustPlot(t, concentration.DoseParameters{Dose: 1, EliminationRate: -1000, TimeStart: 0, TimeEnd: 10, SampleCount: 3})

	var buf bytes.Buffer
	err := New(0, 0).Render(context.Background(), &buf, plot, chart.FormatPNG)
	if !errors.Is(err, chart.ErrUnrenderable) {
		t.Fatalf("expected ErrUnrenderable, got %v", err)
	}
}

func TestRender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plot := mustPlot(t, concentration.DoseParameters{Dose: 1, EliminationRate: 1, TimeStart: 0, TimeEnd: 1, SampleCount: 2})
	var buf bytes.Buffer
	if err := New(0, 0).Render(ctx, &buf, plot, chart.FormatPNG); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRanges_PadDegenerate(t *testing.T) {
	xr := xRange([]float64{3, 3})
	if xr.Min != 2 || xr.Max != 4 {
		t.Fatalf("expected x range [2,4], got [%v,%v]", xr.Min, xr.Max)
	}
	yr := yRange([]float64{0, 0})
	if yr.Min != 0 || yr.Max != 1 {
		t.Fatalf("expected y range [0,1], got [%v,%v]", yr.Min, yr.Max)
	}
	yr = yRange([]float64{5, 2})
	if yr.Min != 0 || yr.Max != 5 {
		t.Fatalf("expected y range [0,5], got [%v,%v]", yr.Min, yr.Max)
	}
	yr = yRange([]float64{-4, -1})
	if yr.Min != -4 || yr.Max != 0 || math.IsNaN(yr.Max) {
		t.Fatalf("expected y range [-4,0], got [%v,%v]", yr.Min, yr.Max)
	}
}
