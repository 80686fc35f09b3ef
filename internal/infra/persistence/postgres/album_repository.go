package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/musicstore/internal/domain/catalog"
)

const pgErrForeignKeyViolation = "23503"

// mapConstraintErr turns a dangling artist or genre reference into its
// domain error; anything else passes through untouched.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "artist"):
			return catalog.ErrUnknownArtist
		case strings.Contains(pgErr.ConstraintName, "genre"):
			return catalog.ErrUnknownGenre
		}
	}
	return err
}

type AlbumRepository struct {
	pool *pgxpool.Pool
}

func NewAlbumRepository(pool *pgxpool.Pool) *AlbumRepository {
	return &AlbumRepository{pool: pool}
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

const albumColumns = `
    a.id, a.title, a.price, a.album_art_url, a.artist_id, a.genre_id,
    ar.id, ar.name, g.id, g.name
`

// The inner joins drop albums whose artist or genre reference is dangling;
// such albums are not eligible for listings.
const albumJoins = `
    FROM albums a
    JOIN artists ar ON ar.id = a.artist_id
    JOIN genres g ON g.id = a.genre_id
`

func scanAlbum(row pgx.Row) (*catalog.Album, error) {
	var (
		a      catalog.Album
		artist catalog.Artist
		genre  catalog.Genre
	)
	err := row.Scan(&a.ID, &a.Title, &a.Price, &a.AlbumArtURL, &a.ArtistID, &a.GenreID,
		&artist.ID, &artist.Name, &genre.ID, &genre.Name)
	if err != nil {
		return nil, err
	}
	a.Artist = &artist
	a.Genre = &genre
	return &a, nil
}

func (r *AlbumRepository) TopSellingAlbums(ctx context.Context, limit int) ([]*catalog.Album, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+albumColumns+albumJoins+`
        LEFT JOIN (
            SELECT album_id, COUNT(*) AS sales
            FROM order_details
            GROUP BY album_id
        ) s ON s.album_id = a.id
        ORDER BY COALESCE(s.sales, 0) DESC, a.id ASC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAlbums(rows)
}

func (r *AlbumRepository) Create(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO albums (title, price, album_art_url, artist_id, genre_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, a.Title, a.Price, a.AlbumArtURL, a.ArtistID, a.GenreID).Scan(&a.ID)
	if err != nil {
		return nil, mapConstraintErr(err)
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AlbumRepository) Update(ctx context.Context, a *catalog.Album) (*catalog.Album, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE albums
        SET title = $2, price = $3, album_art_url = $4, artist_id = $5, genre_id = $6
        WHERE id = $1
    `, a.ID, a.Title, a.Price, a.AlbumArtURL, a.ArtistID, a.GenreID)
	if err != nil {
		return nil, mapConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, catalog.ErrAlbumNotFound
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AlbumRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, id int64) (*catalog.Album, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT `+albumColumns+albumJoins+`
        WHERE a.id = $1
    `, id)

	a, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrAlbumNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AlbumRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Album, error) {
	query := `SELECT ` + albumColumns + albumJoins + ` WHERE TRUE`
	args := []any{}

	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		query += ` AND a.genre_id = $1`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		if len(args) == 1 {
			query += ` AND a.title ILIKE $1`
		} else {
			query += ` AND a.title ILIKE $2`
		}
	}
	query += ` ORDER BY a.title ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAlbums(rows)
}

func collectAlbums(rows pgx.Rows) ([]*catalog.Album, error) {
	albums := make([]*catalog.Album, 0)
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return albums, nil
}
