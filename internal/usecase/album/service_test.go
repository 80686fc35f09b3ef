package album

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/musicstore/internal/domain/catalog"
)

type mockCatalogRepository struct {
	albums map[int64]*catalog.Album
	nextID int64
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{
		albums: make(map[int64]*catalog.Album),
		nextID: 1,
	}
}

func (m *mockCatalogRepository) TopSellingAlbums(ctx context.Context, limit int) ([]*catalog.Album, error) {
	return nil, nil
}

func (m *mockCatalogRepository) Create(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	a.ID = m.nextID
	m.nextID++
	m.albums[a.ID] = a
	return a, nil
}

func (m *mockCatalogRepository) Update(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	if _, ok := m.albums[a.ID]; !ok {
		return nil, catalog.ErrAlbumNotFound
	}
	m.albums[a.ID] = a
	return a, nil
}

func (m *mockCatalogRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.albums[id]; !ok {
		return catalog.ErrAlbumNotFound
	}
	delete(m.albums, id)
	return nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id int64) (*catalog.Album, error) {
	a, ok := m.albums[id]
	if !ok {
		return nil, catalog.ErrAlbumNotFound
	}
	cloned := *a
	return &cloned, nil
}

func (m *mockCatalogRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Album, error) {
	out := make([]*catalog.Album, 0, len(m.albums))
	for _, a := range m.albums {
		out = append(out, a)
	}
	return out, nil
}

type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) InvalidateTopSelling() { m.calls++ }

func TestCreate_InvalidatesListing(t *testing.T) {
	repo := newMockCatalogRepository()
	inv := &mockInvalidator{}
	svc := NewService(repo, inv)

	created, err := svc.Create(context.Background(), &catalog.Album{
		Title: "Led Zeppelin IV", Price: 9.99, ArtistID: 1, GenreID: 1,
	})

	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, 1, inv.calls, "a new album may change the best-seller listing")
}

func TestCreate_RejectsInvalidAlbum(t *testing.T) {
	repo := newMockCatalogRepository()
	inv := &mockInvalidator{}
	svc := NewService(repo, inv)

	_, err := svc.Create(context.Background(), &catalog.Album{Title: "  ", Price: 9.99})

	require.ErrorIs(t, err, catalog.ErrInvalidAlbum)
	require.Zero(t, inv.calls, "a rejected album must not invalidate the listing")
}

func TestUpdate_MergesAndInvalidates(t *testing.T) {
	repo := newMockCatalogRepository()
	inv := &mockInvalidator{}
	svc := NewService(repo, inv)

	created, err := svc.Create(context.Background(), &catalog.Album{
		Title: "Led Zeppelin IV", Price: 9.99, ArtistID: 1, GenreID: 1,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &catalog.Album{ID: created.ID, Price: 7.99})

	require.NoError(t, err)
	require.Equal(t, "Led Zeppelin IV", updated.Title, "unset fields keep their stored values")
	require.Equal(t, 7.99, updated.Price)
	require.Equal(t, 2, inv.calls)
}

func TestUpdate_UnknownAlbum(t *testing.T) {
	svc := NewService(newMockCatalogRepository(), &mockInvalidator{})

	_, err := svc.Update(context.Background(), &catalog.Album{ID: 42, Title: "X"})

	require.ErrorIs(t, err, catalog.ErrAlbumNotFound)
}

func TestDelete_Invalidates(t *testing.T) {
	repo := newMockCatalogRepository()
	inv := &mockInvalidator{}
	svc := NewService(repo, inv)

	created, err := svc.Create(context.Background(), &catalog.Album{
		Title: "Led Zeppelin IV", Price: 9.99, ArtistID: 1, GenreID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.Equal(t, 2, inv.calls)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), catalog.ErrAlbumNotFound)
	require.Equal(t, 2, inv.calls, "a failed delete must not invalidate the listing")
}
