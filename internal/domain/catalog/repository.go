package catalog

import "context"

type Repository interface {
	// TopSellingAlbums returns up to limit albums ranked by order volume,
	// best-selling first, with Artist and Genre resolved.
	TopSellingAlbums(ctx context.Context, limit int) ([]*Album, error)

	Create(ctx context.Context, a *Album) (*Album, error)
	Update(ctx context.Context, a *Album) (*Album, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Album, error)
	List(ctx context.Context, filter ListFilter) ([]*Album, error)
}
