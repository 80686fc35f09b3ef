package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
}
