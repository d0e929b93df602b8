package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, fav domain.FavoriteAssociation) (domain.FavoriteAssociation, bool, error)
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]domain.FavoriteAssociation, error)
	Exists(ctx context.Context, userID, productID string) (bool, error)
}

type favoriteRecord struct {
	ID              string    `gorm:"primaryKey;size:36"`
	UserID          string    `gorm:"size:36;not null;uniqueIndex:idx_favorites_user_product"`
	ProductID       string    `gorm:"size:64;not null;uniqueIndex:idx_favorites_user_product"`
	ProductName     string    `gorm:"size:255;not null"`
	ProductBrand    string    `gorm:"size:128"`
	ProductPrice    float64
	ProductCurrency string    `gorm:"size:8"`
	ProductImage    string    `gorm:"size:512"`
	ProductStore    string    `gorm:"size:128"`
	ProductStoreURL string    `gorm:"size:512"`
	CreatedAt       time.Time `gorm:"index"`
}

func (favoriteRecord) TableName() string { return "favorites" }

func newFavoriteRecord(f domain.FavoriteAssociation) favoriteRecord {
	return favoriteRecord{
		ID:              f.ID,
		UserID:          f.UserID,
		ProductID:       f.ProductID,
		ProductName:     f.ProductName,
		ProductBrand:    f.ProductBrand,
		ProductPrice:    f.ProductPrice,
		ProductCurrency: f.ProductCurrency,
		ProductImage:    f.ProductImage,
		ProductStore:    f.ProductStore,
		ProductStoreURL: f.ProductStoreURL,
		CreatedAt:       f.CreatedAt,
	}
}

func (r favoriteRecord) toDomain() domain.FavoriteAssociation {
	return domain.FavoriteAssociation{
		ID:              r.ID,
		UserID:          r.UserID,
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		ProductBrand:    r.ProductBrand,
		ProductPrice:    r.ProductPrice,
		ProductCurrency: r.ProductCurrency,
		ProductImage:    r.ProductImage,
		ProductStore:    r.ProductStore,
		ProductStoreURL: r.ProductStoreURL,
		CreatedAt:       r.CreatedAt,
	}
}

type gormFavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &gormFavoriteRepository{db: db}
}

// Add stores fav, ignoring duplicates of the same user and product.
// The stored association is returned either way; created reports whether a row was inserted.
func (r *gormFavoriteRepository) Add(ctx context.Context, fav domain.FavoriteAssociation) (domain.FavoriteAssociation, bool, error) {
	record := newFavoriteRecord(fav)
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&record)
	if result.Error != nil {
		return domain.FavoriteAssociation{}, false, result.Error
	}
	created := result.RowsAffected > 0

	var stored favoriteRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", fav.UserID, fav.ProductID).
		First(&stored).
		Error
	if err != nil {
		return domain.FavoriteAssociation{}, false, err
	}
	return stored.toDomain(), created, nil
}

func (r *gormFavoriteRepository) Remove(ctx context.Context, userID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&favoriteRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// List returns the favorites of userID, newest first
func (r *gormFavoriteRepository) List(ctx context.Context, userID string) ([]domain.FavoriteAssociation, error) {
	var records []favoriteRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.FavoriteAssociation, 0, len(records))
	for _, record := range records {
		favorites = append(favorites, record.toDomain())
	}
	return favorites, nil
}

func (r *gormFavoriteRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&favoriteRecord{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).
		Error
	return count > 0, err
}
