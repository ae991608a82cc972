package forms

import "context"

type Repository interface {
	Create(ctx context.Context, f Form) error
	Update(ctx context.Context, f Form) error
	GetByID(ctx context.Context, id string) (Form, error)
}
