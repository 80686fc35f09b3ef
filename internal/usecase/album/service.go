package album

import (
	"context"
	"strings"

	"example.com/musicstore/internal/domain/catalog"
)

// ListingInvalidator drops cached listings that a catalog mutation may have
// made stale.
type ListingInvalidator interface {
	InvalidateTopSelling()
}

type Service struct {
	repo     catalog.Repository
	listings ListingInvalidator
}

func NewService(repo catalog.Repository, listings ListingInvalidator) *Service {
	return &Service{repo: repo, listings: listings}
}

func (s *Service) Create(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	if strings.TrimSpace(a.Title) == "" || a.Price < 0 {
		return nil, catalog.ErrInvalidAlbum
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	s.listings.InvalidateTopSelling()
	return created, nil
}

func (s *Service) Update(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	existed, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	if a.Title != "" {
		existed.Title = a.Title
	}
	if a.Price > 0 {
		existed.Price = a.Price
	}
	if a.AlbumArtURL != "" {
		existed.AlbumArtURL = a.AlbumArtURL
	}
	if a.ArtistID > 0 {
		existed.ArtistID = a.ArtistID
	}
	if a.GenreID > 0 {
		existed.GenreID = a.GenreID
	}

	updated, err := s.repo.Update(ctx, existed)
	if err != nil {
		return nil, err
	}
	s.listings.InvalidateTopSelling()
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.listings.InvalidateTopSelling()
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*catalog.Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Album, error) {
	return s.repo.List(ctx, filter)
}
