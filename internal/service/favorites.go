package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/events"
	"github.com/kahvecikaan/techpulse/internal/metrics"
	"github.com/kahvecikaan/techpulse/internal/repository"
)

type FavoritesService interface {
	Add(ctx context.Context, session domain.Session, productID string) (domain.FavoriteAssociation, error)
	Remove(ctx context.Context, session domain.Session, productID string) error
	List(ctx context.Context, session domain.Session, order domain.FavoriteSort) ([]domain.FavoriteAssociation, error)
	IsFavorite(ctx context.Context, session domain.Session, productID string) (bool, error)
}

type favoritesService struct {
	favorites repository.FavoriteRepository
	catalog   repository.CatalogRepository
	eventBus  *events.EventBus[any]
	metrics   *metrics.StoreMetrics
	logger    hclog.Logger
	now       func() time.Time
}

func NewFavoritesService(
	favorites repository.FavoriteRepository,
	catalog repository.CatalogRepository,
	eventBus *events.EventBus[any],
	m *metrics.StoreMetrics,
	logger hclog.Logger) FavoritesService {
	return &favoritesService{
		favorites: favorites,
		catalog:   catalog,
		eventBus:  eventBus,
		metrics:   m,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *favoritesService) Add(ctx context.Context, session domain.Session, productID string) (domain.FavoriteAssociation, error) {
	if session.Anonymous() {
		return domain.FavoriteAssociation{}, domain.ErrUnauthenticated
	}
	s.logger.Debug("Adding favorite", "user_id", session.UserID, "product_id", productID)

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return domain.FavoriteAssociation{}, err
	}

	fav, created, err := s.favorites.Add(ctx, domain.NewFavorite(session.UserID, product, s.now()))
	if err != nil {
		s.logger.Error("Unable to add favorite", "user_id", session.UserID, "product_id", productID, "error", err)
		return domain.FavoriteAssociation{}, err
	}
	if !created {
		s.logger.Debug("Favorite already present", "user_id", session.UserID, "product_id", productID)
		return fav, nil
	}

	s.metrics.FavoriteChanged("add")
	s.eventBus.Publish(events.FavoriteAdded{
		UserID:      session.UserID,
		ProductID:   product.ID,
		ProductName: product.Name,
	})
	return fav, nil
}

func (s *favoritesService) Remove(ctx context.Context, session domain.Session, productID string) error {
	if session.Anonymous() {
		return domain.ErrUnauthenticated
	}
	s.logger.Debug("Removing favorite", "user_id", session.UserID, "product_id", productID)

	if err := s.favorites.Remove(ctx, session.UserID, productID); err != nil {
		if !errors.Is(err, domain.ErrFavoriteNotFound) {
			s.logger.Error("Unable to remove favorite", "user_id", session.UserID, "product_id", productID, "error", err)
		}
		return err
	}

	s.metrics.FavoriteChanged("remove")
	s.eventBus.Publish(events.FavoriteRemoved{UserID: session.UserID, ProductID: productID})
	return nil
}

func (s *favoritesService) List(ctx context.Context, session domain.Session, order domain.FavoriteSort) ([]domain.FavoriteAssociation, error) {
	if session.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}

	favorites, err := s.favorites.List(ctx, session.UserID)
	if err != nil {
		s.logger.Error("Unable to list favorites", "user_id", session.UserID, "error", err)
		return nil, err
	}

	switch order {
	case domain.FavoriteSortName:
		sort.SliceStable(favorites, func(i, j int) bool {
			return strings.ToLower(favorites[i].ProductName) < strings.ToLower(favorites[j].ProductName)
		})
	case domain.FavoriteSortPrice:
		sort.SliceStable(favorites, func(i, j int) bool {
			return favorites[i].ProductPrice < favorites[j].ProductPrice
		})
	}

	return favorites, nil
}

func (s *favoritesService) IsFavorite(ctx context.Context, session domain.Session, productID string) (bool, error) {
	if session.Anonymous() {
		return false, nil
	}
	return s.favorites.Exists(ctx, session.UserID, productID)
}
