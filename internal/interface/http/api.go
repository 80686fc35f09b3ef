package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domcatalog "example.com/musicstore/internal/domain/catalog"
	domorder "example.com/musicstore/internal/domain/order"
	domuser "example.com/musicstore/internal/domain/user"
	"example.com/musicstore/internal/domain/view"
	albumuc "example.com/musicstore/internal/usecase/album"
	authuc "example.com/musicstore/internal/usecase/auth"
	checkoutuc "example.com/musicstore/internal/usecase/checkout"
	homeuc "example.com/musicstore/internal/usecase/home"
)

type API struct {
	authSvc     *authuc.Service
	checkoutSvc *checkoutuc.Service
	homeSvc     *homeuc.Service
	albumSvc    *albumuc.Service
	tokenSvc    authuc.TokenService
}

type Dependencies struct {
	AuthService     *authuc.Service
	CheckoutService *checkoutuc.Service
	HomeService     *homeuc.Service
	AlbumService    *albumuc.Service
	TokenService    authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:     deps.AuthService,
		checkoutSvc: deps.CheckoutService,
		homeSvc:     deps.HomeService,
		albumSvc:    deps.AlbumService,
		tokenSvc:    deps.TokenService,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", a.handleHome)
	r.Get("/store/albums", a.handleListAlbums)
	r.Get("/store/albums/{id}", a.handleGetAlbum)

	r.Post("/auth/register", a.handleRegister)
	r.Post("/auth/login", a.handleLogin)

	r.Group(func(cr chi.Router) {
		cr.Use(a.authMiddleware)
		cr.Post("/checkout/address-and-payment", a.handleAddressAndPayment)
		cr.Get("/checkout/complete/{id}", a.handleComplete)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(a.authMiddleware)
		ar.Use(a.requireRoles(domuser.RoleCodeAdmin))

		ar.Route("/admin/albums", func(rr chi.Router) {
			rr.Post("/", a.handleCreateAlbum)
			rr.Put("/{id}", a.handleUpdateAlbum)
			rr.Delete("/{id}", a.handleDeleteAlbum)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

// renderResult is the render sink: it maps a tagged view outcome onto an
// HTTP response carrying the template selector and the payload.
func renderResult(w http.ResponseWriter, res view.Result) {
	switch v := res.(type) {
	case view.Redisplay:
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"view":   v.Template(),
			"order":  v.Order,
			"errors": validationDetails(v.Errors),
		})
	case view.Cancelled:
		writeJSON(w, http.StatusOK, map[string]any{
			"view":  v.Template(),
			"order": v.Order,
		})
	case view.Accepted:
		writeJSON(w, http.StatusCreated, map[string]any{
			"view":     v.Template(),
			"order_id": v.OrderID,
		})
	case view.Completed:
		writeJSON(w, http.StatusOK, map[string]any{
			"view":     v.Template(),
			"order_id": v.OrderID,
		})
	case view.Listing:
		writeJSON(w, http.StatusOK, map[string]any{
			"view":   v.Template(),
			"albums": v.Albums,
		})
	case view.Error:
		// One generic body for every error outcome; not-found and
		// not-owned are indistinguishable on the wire.
		status := http.StatusNotFound
		if !errors.Is(v.Err, domorder.ErrOrderNotFound) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, map[string]any{"view": v.Template()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"view": view.TemplateError})
	}
}

func validationDetails(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid input"}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fe.Field()+" is invalid")
	}
	return details
}

func mapAlbum(a *domcatalog.Album) map[string]any {
	out := map[string]any{
		"id":            a.ID,
		"title":         a.Title,
		"price":         a.Price,
		"album_art_url": a.AlbumArtURL,
		"artist_id":     a.ArtistID,
		"genre_id":      a.GenreID,
	}
	if a.Artist != nil {
		out["artist"] = map[string]any{"id": a.Artist.ID, "name": a.Artist.Name}
	}
	if a.Genre != nil {
		out["genre"] = map[string]any{"id": a.Genre.ID, "name": a.Genre.Name}
	}
	return out
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, domcatalog.ErrInvalidAlbum),
		errors.Is(err, domcatalog.ErrUnknownArtist),
		errors.Is(err, domcatalog.ErrUnknownGenre):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domuser.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domcatalog.ErrAlbumNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
