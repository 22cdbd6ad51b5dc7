package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[string]*domain.Product
	listErr  error
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *product
	clone.ID = "prod_" + strconv.Itoa(r.nextID)
	r.products[clone.ID] = &clone
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// stubCatalogCache records calls so tests can assert the cache-aside flow.
type stubCatalogCache struct {
	cached      []domain.Product
	hit         bool
	sets        int
	invalidates int
}

func (c *stubCatalogCache) Get(_ context.Context) ([]domain.Product, bool) {
	return c.cached, c.hit
}

func (c *stubCatalogCache) Set(_ context.Context, products []domain.Product) {
	c.cached = products
	c.sets++
}

func (c *stubCatalogCache) Invalidate(_ context.Context) {
	c.cached = nil
	c.hit = false
	c.invalidates++
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductListCacheHitSkipsRepo(t *testing.T) {
	repo := newStubProductRepo()
	repo.listErr = errors.New("repo must not be called")
	cache := &stubCatalogCache{
		cached: []domain.Product{{ID: "p1", Name: "Bottle", Price: 10}},
		hit:    true,
	}
	svc := NewProductService(repo, cache, zerolog.Nop())

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "p1" {
		t.Errorf("expected cached listing, got %+v", out)
	}
}

func TestProductListCacheMissFills(t *testing.T) {
	repo := newStubProductRepo()
	if _, err := repo.Create(context.Background(), &domain.Product{Name: "Bottle", Price: 10}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 product, got %d", len(out))
	}
	if cache.sets != 1 {
		t.Errorf("expected listing written back to cache, sets=%d", cache.sets)
	}
}

func TestProductCreateValidatesAndInvalidates(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	_, err := svc.Create(context.Background(), "admin_1", domain.ProductFields{Name: "Bottle", Price: 0, Description: "x"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-positive price, got %v", err)
	}

	created, err := svc.Create(context.Background(), "admin_1", domain.ProductFields{Name: "Bottle", Price: 10, Description: "Steel bottle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.Owner != "admin_1" {
		t.Errorf("expected id assigned and owner recorded, got %+v", created)
	}
	if cache.invalidates != 1 {
		t.Errorf("expected cache invalidated once, got %d", cache.invalidates)
	}
}

func TestProductUpdatePartial(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), "admin_1", domain.ProductFields{Name: "Bottle", Price: 10, Description: "Steel bottle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, domain.ProductFields{Price: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price != 12 {
		t.Errorf("expected price updated to 12, got %v", updated.Price)
	}
	if updated.Name != "Bottle" || updated.Description != "Steel bottle" {
		t.Errorf("unsupplied fields must keep stored values, got %+v", updated)
	}
}

func TestProductUpdateMissing(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, zerolog.Nop())

	_, err := svc.Update(context.Background(), "ghost", domain.ProductFields{Name: "X"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), "admin_1", domain.ProductFields{Name: "Bottle", Price: 10, Description: "Steel bottle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
