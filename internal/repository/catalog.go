package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kahvecikaan/techpulse/internal/domain"
)

// CatalogRepository is the read-only product source searched by the storefront
type CatalogRepository interface {
	GetAll(ctx context.Context) (domain.Products, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
}

type memoryCatalogRepository struct {
	products domain.Products
	mutex    sync.RWMutex
}

// NewMemoryCatalogRepository serves the built-in catalog
func NewMemoryCatalogRepository() CatalogRepository {
	return NewCatalogRepository(defaultCatalog())
}

// NewCatalogRepository serves the given products. The slice is copied.
func NewCatalogRepository(products domain.Products) CatalogRepository {
	return &memoryCatalogRepository{products: cloneAll(products)}
}

// LoadCatalogFile reads a JSON array of products from path and validates every record
func LoadCatalogFile(path string, v *domain.Validation) (CatalogRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	var products domain.Products
	if err := json.NewDecoder(f).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for i := range products {
		if errs := v.Validate(&products[i]); len(errs) > 0 {
			return nil, fmt.Errorf("catalog record %d: %s", i, strings.Join(errs.Errors(), "; "))
		}
		if _, dup := seen[products[i].ID]; dup {
			return nil, fmt.Errorf("catalog record %d: duplicate id %q", i, products[i].ID)
		}
		seen[products[i].ID] = struct{}{}
	}

	return NewCatalogRepository(products), nil
}

func (r *memoryCatalogRepository) GetAll(ctx context.Context) (domain.Products, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return cloneAll(r.products), nil
}

func (r *memoryCatalogRepository) GetByID(ctx context.Context, id string) (domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			return product.Clone(), nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}

func cloneAll(products domain.Products) domain.Products {
	out := make(domain.Products, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
