package forms

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"drug-concentration/internal/domain/concentration"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Form
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Form{}}
}

func (r *testRepo) Create(ctx context.Context, f Form) error {
	if f.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[f.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) Update(ctx context.Context, f Form) error {
	if _, ok := r.byID[f.ID]; !ok {
		return ErrNotFound
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Form, error) {
	f, ok := r.byID[id]
	if !ok {
		return Form{}, ErrNotFound
	}
	return f, nil
}

func ptr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Open_UsesDefaults(t *testing.T) {
	svc := NewService(newTestRepo(), 0)
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	f, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if f.ID == "" {
		t.Fatalf("expected id")
	}
	if f.Fields != DefaultFields() {
		t.Fatalf("expected default fields, got %+v", f.Fields)
	}
	if f.CreatedAt != now || f.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Edit_OnlyTouchesGivenFields(t *testing.T) {
	svc := NewService(newTestRepo(), 0)
	f, _ := svc.Open(context.Background())

	got, err := svc.Edit(context.Background(), f.ID, EditInput{Dose: ptr("100"), Intervals: ptr("oops")})
	if err != nil {
		t.Fatalf("Edit error: %v", err)
	}
	if got.Fields.Dose != "100" || got.Fields.Intervals != "oops" {
		t.Fatalf("expected edited fields, got %+v", got.Fields)
	}
	if got.Fields.EliminationRate != DefaultEliminationRate || got.Fields.TimeEnd != DefaultTimeEnd {
		t.Fatalf("untouched fields changed: %+v", got.Fields)
	}
}

func TestService_Generate(t *testing.T) {
	svc := NewService(newTestRepo(), 0)
	f, _ := svc.Open(context.Background())
	_, _ = svc.Edit(context.Background(), f.ID, EditInput{
		Dose:            ptr("100"),
		EliminationRate: ptr("0.5"),
		TimeStart:       ptr("0"),
		TimeEnd:         ptr("10"),
		Intervals:       ptr("5"),
	})

	plot, err := svc.Generate(context.Background(), f.ID, concentration.MethodClosedForm)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(plot.Curve) != 5 || plot.Curve[1].Time != 2.5 {
		t.Fatalf("unexpected curve %+v", plot.Curve)
	}
	want := 100 / 0.5 * (1 - math.Exp(-5))
	if math.Abs(plot.TotalEffect-want) > 1e-3 {
		t.Fatalf("TotalEffect = %g, want %g", plot.TotalEffect, want)
	}
}

func TestService_Generate_MalformedLeavesFieldsUnchanged(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 0)
	f, _ := svc.Open(context.Background())
	edited, _ := svc.Edit(context.Background(), f.ID, EditInput{Dose: ptr("abc"), TimeEnd: ptr("12")})

	_, err := svc.Generate(context.Background(), f.ID, concentration.MethodClosedForm)
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if DialogFor(err) != InvalidInputDialog() {
		t.Fatalf("expected invalid input dialog")
	}
	if repo.byID[f.ID].Fields != edited.Fields {
		t.Fatalf("fields changed after failed generate: %+v", repo.byID[f.ID].Fields)
	}
}

func TestService_Generate_DefaultsHitRangeError(t *testing.T) {
	svc := NewService(newTestRepo(), 0)
	f, _ := svc.Open(context.Background())

	_, err := svc.Generate(context.Background(), f.ID, concentration.MethodClosedForm)
	if !errors.Is(err, concentration.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for 0 intervals, got %v", err)
	}
}

func TestService_Generate_TooManySamples(t *testing.T) {
	svc := NewService(newTestRepo(), 10)

	_, err := svc.Compute(Fields{Dose: "1", EliminationRate: "1", TimeStart: "0", TimeEnd: "1", Intervals: "11"}, concentration.MethodClosedForm)
	if !errors.Is(err, ErrTooManySamples) {
		t.Fatalf("expected ErrTooManySamples, got %v", err)
	}
	if _, err := svc.Compute(Fields{Dose: "1", EliminationRate: "1", TimeStart: "0", TimeEnd: "1", Intervals: "10"}, concentration.MethodClosedForm); err != nil {
		t.Fatalf("expected 10 samples to be allowed, got %v", err)
	}
}

func TestService_Reset_RestoresDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 0)

	now1 := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Minute)

	svc.now = func() time.Time { return now1 }
	f, _ := svc.Open(context.Background())
	_, _ = svc.Edit(context.Background(), f.ID, EditInput{
		Dose:            ptr("100"),
		EliminationRate: ptr("0.5"),
		TimeStart:       ptr("1"),
		TimeEnd:         ptr("10"),
		Intervals:       ptr("xyz"),
	})

	svc.now = func() time.Time { return now2 }
	got, err := svc.Reset(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	want := Fields{Dose: "00", EliminationRate: "0.0", TimeStart: "00", TimeEnd: "00", Intervals: "00"}
	if got.Fields != want || repo.byID[f.ID].Fields != want {
		t.Fatalf("expected defaults after reset, got %+v", got.Fields)
	}
	if got.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt to change on reset")
	}
	if d := ResetDialog(); d.Kind != DialogInfo || d.Message != "All fields have been reset." {
		t.Fatalf("unexpected reset dialog %+v", d)
	}
}

func TestService_UnknownForm(t *testing.T) {
	svc := NewService(newTestRepo(), 0)

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Reset(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on reset, got %v", err)
	}
}

func TestNewService_RequiresRepository(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil repository")
		}
	}()
	NewService(nil, 0)
}

func TestService_EditThenGenerate_UsesStoredFields(t *testing.T) {
	svc := NewService(newTestRepo(), 0)
	f, _ := svc.Open(context.Background())

	if _, err := svc.Edit(context.Background(), f.ID, EditInput{
		Dose:            ptr("100"),
		EliminationRate: ptr("0.5"),
		TimeStart:       ptr("0"),
		TimeEnd:         ptr("10"),
		Intervals:       ptr("5"),
	}); err != nil {
		t.Fatalf("Edit error: %v", err)
	}
	plot, err := svc.Generate(context.Background(), f.ID, concentration.MethodClosedForm)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	want := 200 * (1 - math.Exp(-5))
	if len(plot.Curve) != 5 || math.Abs(plot.TotalEffect-want) > 1e-9 {
		t.Fatalf("unexpected plot: %d samples, total %v", len(plot.Curve), plot.TotalEffect)
	}
}
