package professor

import "context"

// Repository defines the contract for professor storage.
type Repository interface {
	Create(ctx context.Context, p *Professor) error
	GetByID(ctx context.Context, id int64) (Professor, error)
	List(ctx context.Context) ([]Professor, error)
}
