package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"drug-concentration/internal/domain/concentration"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidNumber  = errors.New("invalid numerical value")
	ErrNotFound       = errors.New("form not found")
	ErrTooManySamples = errors.New("too many samples")
)

type Service struct {
	repo       Repository
	now        func() time.Time
	maxSamples int
}

// NewService crea el servicio. maxSamples <= 0 desactiva el límite.
// repo es obligatorio; para un proceso local alcanza con memory.NewFormRepo.
func NewService(repo Repository, maxSamples int) *Service {
	if repo == nil {
		panic("forms: NewService requires a repository")
	}
	return &Service{
		repo:       repo,
		now:        time.Now,
		maxSamples: maxSamples,
	}
}

// Open crea un formulario nuevo con los valores por defecto.
func (s *Service) Open(ctx context.Context) (Form, error) {
	now := s.now()
	f := Form{
		ID:        uuid.NewString(),
		Fields:    DefaultFields(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return Form{}, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, id string) (Form, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Form{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// EditInput usa punteros: nil = no tocar el campo.
type EditInput struct {
	Dose            *string
	EliminationRate *string
	TimeStart       *string
	TimeEnd         *string
	Intervals       *string
}

// Edit escribe texto libre en los campos; no valida nada.
func (s *Service) Edit(ctx context.Context, id string, in EditInput) (Form, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return Form{}, err
	}

	if in.Dose != nil {
		f.Fields.Dose = *in.Dose
	}
	if in.EliminationRate != nil {
		f.Fields.EliminationRate = *in.EliminationRate
	}
	if in.TimeStart != nil {
		f.Fields.TimeStart = *in.TimeStart
	}
	if in.TimeEnd != nil {
		f.Fields.TimeEnd = *in.TimeEnd
	}
	if in.Intervals != nil {
		f.Fields.Intervals = *in.Intervals
	}
	f.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, f); err != nil {
		return Form{}, err
	}
	return f, nil
}

// Generate es el botón "Generate Plot": lee los campos, arma la curva
// y calcula el efecto total. Nunca modifica los campos.
func (s *Service) Generate(ctx context.Context, id string, method concentration.IntegrationMethod) (concentration.Plot, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return concentration.Plot{}, err
	}
	return s.Compute(f.Fields, method)
}

// Compute hace el trabajo de Generate sin pasar por el repositorio.
func (s *Service) Compute(fields Fields, method concentration.IntegrationMethod) (concentration.Plot, error) {
	params, err := fields.Parse()
	if err != nil {
		return concentration.Plot{}, err
	}
	if s.maxSamples > 0 && params.SampleCount > s.maxSamples {
		return concentration.Plot{}, fmt.Errorf("%w: %d > %d", ErrTooManySamples, params.SampleCount, s.maxSamples)
	}
	return concentration.Evaluate(params, method)
}

// Reset es el botón "Reset": vuelve todos los campos a los defaults.
func (s *Service) Reset(ctx context.Context, id string) (Form, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return Form{}, err
	}
	f.Fields = DefaultFields()
	f.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, f); err != nil {
		return Form{}, err
	}
	return f, nil
}

// DialogFor traduce un error de Generate al diálogo que ve el usuario.
func DialogFor(err error) Dialog {
	if errors.Is(err, ErrInvalidNumber) {
		return InvalidInputDialog()
	}
	return ErrorDialog(err)
}
