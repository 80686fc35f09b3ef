package catalog

type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Album references exactly one artist and one genre. Artist and Genre are
// populated by queries that resolve the references; an album whose artist or
// genre row is missing never shows up in a listing.
type Album struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	AlbumArtURL string  `json:"album_art_url"`
	ArtistID    int64   `json:"artist_id"`
	GenreID     int64   `json:"genre_id"`
	Artist      *Artist `json:"artist,omitempty"`
	Genre       *Genre  `json:"genre,omitempty"`
}

type ListFilter struct {
	GenreID *int64
	Search  string
}
