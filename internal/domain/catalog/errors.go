package catalog

import "errors"

var (
	ErrAlbumNotFound = errors.New("album not found")
	ErrInvalidAlbum  = errors.New("invalid album")
	ErrUnknownArtist = errors.New("unknown artist")
	ErrUnknownGenre  = errors.New("unknown genre")
)
