package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"drug-concentration/internal/domain/concentration"
)

// ErrUnrenderable indica datos que no se pueden dibujar (NaN/Inf).
var ErrUnrenderable = errors.New("chart: unrenderable data")

// Format es el formato de imagen de salida.
// @Enum png, svg
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Renderer dibuja una curva de concentración con su área sombreada.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, plot concentration.Plot, format Format) error
}
