package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
)

// fakeProductRepo implements repository.ProductRepository backed by a map
type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (f *fakeProductRepo) Create(context.Context, *entity.Product) error       { return nil }
func (f *fakeProductRepo) CreateBatch(context.Context, []entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByIDs(context.Context, []uuid.UUID) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetBySlug(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetBySKU(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(context.Context, uuid.UUID) error       { return nil }
func (f *fakeProductRepo) List(context.Context, *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) GetRelated(context.Context, uuid.UUID, int) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetLowStock(context.Context) ([]entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) IncrementViewCount(context.Context, uuid.UUID) error   { return nil }
func (f *fakeProductRepo) UpdateRating(context.Context, uuid.UUID, float64, int) error {
	return nil
}

// fakeWishlistRepo implements repository.WishlistRepository with an ordered
// slice per user
type fakeWishlistRepo struct {
	products map[uuid.UUID]*entity.Product
	items    map[uuid.UUID][]uuid.UUID
}

func newFakeWishlistRepo(products map[uuid.UUID]*entity.Product) *fakeWishlistRepo {
	return &fakeWishlistRepo{products: products, items: map[uuid.UUID][]uuid.UUID{}}
}

func (f *fakeWishlistRepo) Add(_ context.Context, item *entity.WishlistItem) error {
	f.items[item.UserID] = append(f.items[item.UserID], item.ProductID)
	return nil
}

func (f *fakeWishlistRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	kept := f.items[userID][:0]
	for _, id := range f.items[userID] {
		if id != productID {
			kept = append(kept, id)
		}
	}
	f.items[userID] = kept
	return nil
}

func (f *fakeWishlistRepo) Exists(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	for _, id := range f.items[userID] {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) Count(_ context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(f.items[userID])), nil
}

func (f *fakeWishlistRepo) ListProducts(_ context.Context, userID uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range f.items[userID] {
		if p, ok := f.products[id]; ok && p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func wishlistProduct(name string, active bool) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		SKU:       "GR-" + uuid.NewString()[:8],
		IsActive:  active,
		CreatedAt: time.Now(),
	}
}

func newWishlistFixture(products ...*entity.Product) (*WishlistService, *fakeWishlistRepo) {
	byID := map[uuid.UUID]*entity.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	repo := newFakeWishlistRepo(byID)
	svc := NewWishlistService(repo, &fakeProductRepo{products: byID})
	return svc, repo
}

func TestAddToWishlist_ReturnsCount(t *testing.T) {
	first := wishlistProduct("Raw Forest Honey", true)
	second := wishlistProduct("Sourdough Loaf", true)
	svc, _ := newWishlistFixture(first, second)
	userID := uuid.New()

	count, err := svc.AddToWishlist(context.Background(), userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.AddToWishlist(context.Background(), userID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAddToWishlist_UnknownProduct(t *testing.T) {
	svc, _ := newWishlistFixture()

	_, err := svc.AddToWishlist(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAddToWishlist_DuplicateRejected(t *testing.T) {
	p := wishlistProduct("Raw Forest Honey", true)
	svc, _ := newWishlistFixture(p)
	userID := uuid.New()

	_, err := svc.AddToWishlist(context.Background(), userID, p.ID)
	require.NoError(t, err)

	_, err = svc.AddToWishlist(context.Background(), userID, p.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRemoveFromWishlist_ReturnsRemaining(t *testing.T) {
	first := wishlistProduct("Raw Forest Honey", true)
	second := wishlistProduct("Sourdough Loaf", true)
	svc, _ := newWishlistFixture(first, second)
	userID := uuid.New()

	_, err := svc.AddToWishlist(context.Background(), userID, first.ID)
	require.NoError(t, err)
	_, err = svc.AddToWishlist(context.Background(), userID, second.ID)
	require.NoError(t, err)

	count, err := svc.RemoveFromWishlist(context.Background(), userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Removing a product that is not on the wishlist is a no-op
	count, err = svc.RemoveFromWishlist(context.Background(), userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetWishlist_SkipsInactiveProducts(t *testing.T) {
	active := wishlistProduct("Raw Forest Honey", true)
	retired := wishlistProduct("Discontinued Granola", false)
	svc, repo := newWishlistFixture(active, retired)
	userID := uuid.New()

	require.NoError(t, repo.Add(context.Background(), &entity.WishlistItem{UserID: userID, ProductID: active.ID}))
	require.NoError(t, repo.Add(context.Background(), &entity.WishlistItem{UserID: userID, ProductID: retired.ID}))

	products, err := svc.GetWishlist(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.Name, products[0].Name)
}
