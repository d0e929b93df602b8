package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindOrCreateByEmail(ctx context.Context, email, name string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type userRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:320;not null"`
	Name      string `gorm:"size:128"`
	AvatarURL string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// FindOrCreateByEmail returns the user registered with email, creating it on first sign-in
func (r *gormUserRepository) FindOrCreateByEmail(ctx context.Context, email, name string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	record := userRecord{ID: uuid.NewString(), Email: email, Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&record).
		Error
	if err != nil {
		return domain.User{}, err
	}

	var existing userRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err != nil {
		return domain.User{}, err
	}
	return existing.toDomain(), nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var record userRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return record.toDomain(), nil
}
