package forms

import (
	"errors"
	"testing"

	"drug-concentration/internal/domain/concentration"
)

func TestFields_Parse(t *testing.T) {
	got, err := Fields{
		Dose:            "100",
		EliminationRate: " 0.5 ",
		TimeStart:       "0",
		TimeEnd:         "1e1",
		Intervals:       "50",
	}.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := concentration.DoseParameters{Dose: 100, EliminationRate: 0.5, TimeStart: 0, TimeEnd: 10, SampleCount: 50}
	if got != want {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestFields_Parse_Defaults(t *testing.T) {
	got, err := DefaultFields().Parse()
	if err != nil {
		t.Fatalf("defaults should parse, got %v", err)
	}
	if got != (concentration.DoseParameters{}) {
		t.Fatalf("defaults should parse to zero values, got %+v", got)
	}
}

func TestFields_Parse_RejectsMalformed(t *testing.T) {
	base := Fields{Dose: "100", EliminationRate: "0.5", TimeStart: "0", TimeEnd: "10", Intervals: "5"}

	cases := map[string]Fields{
		"dose text":      withField(base, func(f *Fields) { f.Dose = "abc" }),
		"rate empty":     withField(base, func(f *Fields) { f.EliminationRate = "" }),
		"start comma":    withField(base, func(f *Fields) { f.TimeStart = "1,5" }),
		"end unit":       withField(base, func(f *Fields) { f.TimeEnd = "10h" }),
		"intervals real": withField(base, func(f *Fields) { f.Intervals = "2.5" }),
		"intervals text": withField(base, func(f *Fields) { f.Intervals = "many" }),
	}
	for name, f := range cases {
		if _, err := f.Parse(); !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%s: expected ErrInvalidNumber, got %v", name, err)
		}
	}
}

func withField(f Fields, mut func(*Fields)) Fields {
	mut(&f)
	return f
}

func TestDialogFor(t *testing.T) {
	_, err := Fields{Dose: "abc"}.Parse()
	d := DialogFor(err)
	if d.Kind != DialogError || d.Title != "Error" || d.Message != InvalidInputMessage {
		t.Fatalf("unexpected dialog %+v", d)
	}

	d = DialogFor(&concentration.InvalidRangeError{Reason: "end time 1 is before start time 2"})
	if d.Kind != DialogError || d.Message != "invalid range: end time 1 is before start time 2" {
		t.Fatalf("unexpected dialog %+v", d)
	}
}
