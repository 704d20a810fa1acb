package puppies

import "context"

type Repository interface {
	// Create persiste p (sin ID) y devuelve el registro con el ID asignado por el store.
	Create(ctx context.Context, p Puppy) (Puppy, error)
	GetByID(ctx context.Context, id int64) (Puppy, error)
	List(ctx context.Context) ([]Puppy, error)
	// Update aplica solo los campos presentes en el patch, de forma atómica.
	Update(ctx context.Context, id int64, patch Patch) (Puppy, error)
	Delete(ctx context.Context, id int64) error
}
