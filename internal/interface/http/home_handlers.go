package http

import (
	"errors"
	"net/http"

	domcatalog "example.com/musicstore/internal/domain/catalog"
)

func (a *API) handleHome(w http.ResponseWriter, r *http.Request) {
	renderResult(w, a.homeSvc.TopSellingAlbums(r.Context()))
}

func (a *API) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	filter := domcatalog.ListFilter{Search: r.URL.Query().Get("q")}

	albums, err := a.albumSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(albums))
	for _, album := range albums {
		out = append(out, mapAlbum(album))
	}
	writeJSON(w, http.StatusOK, map[string]any{"albums": out})
}

func (a *API) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid album id"))
		return
	}

	album, err := a.albumSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAlbum(album))
}
