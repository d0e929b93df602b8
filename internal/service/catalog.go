package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/metrics"
	"github.com/kahvecikaan/techpulse/internal/repository"
	"github.com/kahvecikaan/techpulse/internal/search"
)

type CatalogService interface {
	Search(ctx context.Context, req domain.SearchRequest) (SearchResult, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	Describe(ctx context.Context, id string) (string, error)
	Suggestions(ctx context.Context, partial string) []string
	Facets(ctx context.Context, req domain.SearchRequest) (search.Facets, error)
}

// SearchResult is a ranked result set together with what was read from the query text
type SearchResult struct {
	Query       string             `json:"query"`
	Count       int                `json:"count"`
	Constraints search.Constraints `json:"constraints"`
	Products    domain.Products    `json:"products"`
}

type catalogService struct {
	repo    repository.CatalogRepository
	metrics *metrics.StoreMetrics
	logger  hclog.Logger
	now     func() time.Time
}

func NewCatalogService(
	repo repository.CatalogRepository,
	m *metrics.StoreMetrics,
	logger hclog.Logger) CatalogService {
	return &catalogService{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *catalogService) Search(ctx context.Context, req domain.SearchRequest) (SearchResult, error) {
	s.logger.Debug("Searching products", "query", req.Query, "sort", req.Sort)

	start := s.now()
	products, err := s.search(ctx, req)
	if err != nil {
		return SearchResult{}, err
	}
	search.SortProducts(products, req.Sort)
	s.metrics.ObserveSearch(string(req.Sort), len(products), s.now().Sub(start))

	if len(products) == 0 {
		s.logger.Debug("Search returned no products", "query", req.Query)
	}

	return SearchResult{
		Query:       req.Query,
		Count:       len(products),
		Constraints: search.ExtractConstraints(req.Query),
		Products:    products,
	}, nil
}

func (s *catalogService) search(ctx context.Context, req domain.SearchRequest) (domain.Products, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get catalog", "error", err)
		return nil, err
	}
	return search.New(catalog).Search(req.Query, req.Filters), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Unable to get the product by ID", "id", id, "error", err)
		return domain.Product{}, err
	}
	return product, nil
}

func (s *catalogService) Describe(ctx context.Context, id string) (string, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}
	return search.Describe(product), nil
}

func (s *catalogService) Suggestions(ctx context.Context, partial string) []string {
	return search.Suggestions(partial)
}

func (s *catalogService) Facets(ctx context.Context, req domain.SearchRequest) (search.Facets, error) {
	s.logger.Debug("Building facets", "query", req.Query)

	products, err := s.search(ctx, req)
	if err != nil {
		return search.Facets{}, err
	}
	return search.BuildFacets(products), nil
}
