package http

import (
	"encoding/json"
	"errors"
	"net/http"

	domcatalog "example.com/musicstore/internal/domain/catalog"
)

type albumRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	AlbumArtURL string  `json:"album_art_url"`
	ArtistID    int64   `json:"artist_id"`
	GenreID     int64   `json:"genre_id"`
}

func (a *API) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	album, err := a.albumSvc.Create(r.Context(), &domcatalog.Album{
		Title:       req.Title,
		Price:       req.Price,
		AlbumArtURL: req.AlbumArtURL,
		ArtistID:    req.ArtistID,
		GenreID:     req.GenreID,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapAlbum(album))
}

func (a *API) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid album id"))
		return
	}

	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	album, err := a.albumSvc.Update(r.Context(), &domcatalog.Album{
		ID:          id,
		Title:       req.Title,
		Price:       req.Price,
		AlbumArtURL: req.AlbumArtURL,
		ArtistID:    req.ArtistID,
		GenreID:     req.GenreID,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAlbum(album))
}

func (a *API) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid album id"))
		return
	}

	if err := a.albumSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
