package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domcatalog "example.com/musicstore/internal/domain/catalog"
	domorder "example.com/musicstore/internal/domain/order"
	domuser "example.com/musicstore/internal/domain/user"
	"example.com/musicstore/internal/infra/cache"
	"example.com/musicstore/internal/infra/security"
	"example.com/musicstore/internal/observability"
	albumuc "example.com/musicstore/internal/usecase/album"
	authuc "example.com/musicstore/internal/usecase/auth"
	checkoutuc "example.com/musicstore/internal/usecase/checkout"
	homeuc "example.com/musicstore/internal/usecase/home"
)

// --- in-memory repositories shared by the handler tests ---

type memOrderRepository struct {
	orders map[int64]*domorder.Order
	nextID int64
}

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{orders: make(map[int64]*domorder.Order), nextID: 1}
}

func (m *memOrderRepository) Create(ctx context.Context, o *domorder.Order) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *o
	stored.ID = id
	m.orders[id] = &stored
	return id, nil
}

func (m *memOrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, domorder.ErrOrderNotFound
	}
	cloned := *o
	return &cloned, nil
}

type memCatalogRepository struct {
	albums     map[int64]*domcatalog.Album
	nextID     int64
	topQueries int
}

func newMemCatalogRepository() *memCatalogRepository {
	return &memCatalogRepository{albums: make(map[int64]*domcatalog.Album), nextID: 1}
}

func (m *memCatalogRepository) seedLinkedAlbums(n int) {
	for i := 1; i <= n; i++ {
		id := int64(i)
		m.albums[id] = &domcatalog.Album{
			ID:       id,
			Title:    fmt.Sprintf("Album %d", i),
			Price:    9.99,
			ArtistID: id,
			GenreID:  id,
			Artist:   &domcatalog.Artist{ID: id, Name: fmt.Sprintf("Artist Name %d", i)},
			Genre:    &domcatalog.Genre{ID: id, Name: fmt.Sprintf("Genre Name %d", i)},
		}
		if id >= m.nextID {
			m.nextID = id + 1
		}
	}
}

func (m *memCatalogRepository) TopSellingAlbums(ctx context.Context, limit int) ([]*domcatalog.Album, error) {
	m.topQueries++
	out := make([]*domcatalog.Album, 0, limit)
	for id := int64(1); len(out) < limit && id < m.nextID; id++ {
		if a, ok := m.albums[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memCatalogRepository) Create(ctx context.Context, a *domcatalog.Album) (*domcatalog.Album, error) {
	a.ID = m.nextID
	m.nextID++
	m.albums[a.ID] = a
	return a, nil
}

func (m *memCatalogRepository) Update(ctx context.Context, a *domcatalog.Album) (*domcatalog.Album, error) {
	if _, ok := m.albums[a.ID]; !ok {
		return nil, domcatalog.ErrAlbumNotFound
	}
	m.albums[a.ID] = a
	return a, nil
}

func (m *memCatalogRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.albums[id]; !ok {
		return domcatalog.ErrAlbumNotFound
	}
	delete(m.albums, id)
	return nil
}

func (m *memCatalogRepository) GetByID(ctx context.Context, id int64) (*domcatalog.Album, error) {
	a, ok := m.albums[id]
	if !ok {
		return nil, domcatalog.ErrAlbumNotFound
	}
	return a, nil
}

func (m *memCatalogRepository) List(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.Album, error) {
	out := make([]*domcatalog.Album, 0, len(m.albums))
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.albums[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type memUserRepository struct {
	usersByName map[string]*domuser.User
	nextID      int64
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{usersByName: make(map[string]*domuser.User), nextID: 1}
}

func (m *memUserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	if _, ok := m.usersByName[u.Username]; ok {
		return nil, domuser.ErrUsernameTaken
	}
	u.ID = m.nextID
	m.nextID++
	m.usersByName[u.Username] = u
	return u, nil
}

func (m *memUserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	u, ok := m.usersByName[username]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	for _, u := range m.usersByName {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

// --- test environment ---

type testEnv struct {
	router   chi.Router
	orders   *memOrderRepository
	catalog  *memCatalogRepository
	users    *memUserRepository
	tokenSvc *security.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	orders := newMemOrderRepository()
	catalogRepo := newMemCatalogRepository()
	users := newMemUserRepository()

	logger := zap.NewNop()
	metrics := observability.NewWith(prometheus.NewRegistry())
	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	passwordSvc := security.NewBcryptService(bcryptTestCost)
	listingCache := cache.NewListingCache(time.Minute)

	homeSvc := homeuc.NewService(catalogRepo, listingCache, logger, metrics)

	api := NewAPI(Dependencies{
		AuthService:     authuc.NewService(users, passwordSvc, tokenSvc),
		CheckoutService: checkoutuc.NewService(orders, logger, metrics),
		HomeService:     homeSvc,
		AlbumService:    albumuc.NewService(catalogRepo, homeSvc),
		TokenService:    tokenSvc,
	})

	return &testEnv{
		router:   api.Router(),
		orders:   orders,
		catalog:  catalogRepo,
		users:    users,
		tokenSvc: tokenSvc,
	}
}

// bcrypt's minimum cost keeps the handler tests fast.
const bcryptTestCost = 4

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func (e *testEnv) tokenFor(t *testing.T, username string, role domuser.RoleCode) string {
	t.Helper()
	token, err := e.tokenSvc.GenerateToken(&domuser.User{
		ID:       1,
		Username: username,
		Email:    username + "@example.com",
		RoleCode: role,
	})
	require.NoError(t, err)
	return token
}
