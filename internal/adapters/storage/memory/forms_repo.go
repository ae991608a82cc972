package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"drug-concentration/internal/domain/forms"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// FormRepoOptions acota las sesiones en memoria.
// MaxForms <= 0 => sin tope; TTL <= 0 => no expiran.
type FormRepoOptions struct {
	MaxForms int
	TTL      time.Duration
}

// formRepo guarda sesiones en un LRU con expiración: la menos usada se descarta
// al superar MaxForms y cualquier sesión sin uso expira después de TTL.
type formRepo struct {
	mu   sync.Mutex // Peek+Add tienen que ser atómicos
	byID *expirable.LRU[string, forms.Form]
}

func NewFormRepo(opts FormRepoOptions) forms.Repository {
	size := opts.MaxForms
	if size < 0 {
		size = 0
	}
	return &formRepo{
		byID: expirable.NewLRU[string, forms.Form](size, nil, opts.TTL),
	}
}

func (r *formRepo) Create(ctx context.Context, f forms.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("form id required")
	}
	if _, exists := r.byID.Peek(f.ID); exists {
		return errors.New("form already exists")
	}
	r.byID.Add(f.ID, f)
	return nil
}

func (r *formRepo) Update(ctx context.Context, f forms.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("form id required")
	}
	if _, exists := r.byID.Peek(f.ID); !exists {
		return forms.ErrNotFound
	}
	r.byID.Add(f.ID, f)
	return nil
}

func (r *formRepo) GetByID(ctx context.Context, id string) (forms.Form, error) {
	f, ok := r.byID.Get(id)
	if !ok {
		return forms.Form{}, forms.ErrNotFound
	}
	return f, nil
}

// Len devuelve cuántas sesiones siguen vivas.
func (r *formRepo) Len() int {
	return r.byID.Len()
}
