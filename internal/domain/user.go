package domain

import "time"

// User is a storefront shopper known to the identity store
//
// swagger:model
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session identifies the caller of a user-scoped operation.
// It is passed explicitly; the zero value is an anonymous caller.
type Session struct {
	UserID  string
	Email   string
	Name    string
	TokenID string
}

// Anonymous reports whether nobody is signed in
func (s Session) Anonymous() bool {
	return s.UserID == ""
}

// FavoriteAssociation links a user to a product, with display fields copied
// from the product at the time it was favorited
//
// swagger:model
type FavoriteAssociation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductBrand    string    `json:"productBrand,omitempty"`
	ProductPrice    float64   `json:"productPrice"`
	ProductCurrency string    `json:"productCurrency,omitempty"`
	ProductImage    string    `json:"productImage,omitempty"`
	ProductStore    string    `json:"productStore,omitempty"`
	ProductStoreURL string    `json:"productStoreUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewFavorite copies the display fields of p into an association for userID
func NewFavorite(userID string, p Product, now time.Time) FavoriteAssociation {
	return FavoriteAssociation{
		UserID:          userID,
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductBrand:    p.Brand,
		ProductPrice:    p.Price,
		ProductCurrency: p.Currency,
		ProductImage:    p.Image,
		ProductStore:    p.Store,
		ProductStoreURL: p.StoreURL,
		CreatedAt:       now,
	}
}

// FavoriteSort orders a favorites listing
type FavoriteSort string

const (
	FavoriteSortDate  FavoriteSort = "date"
	FavoriteSortName  FavoriteSort = "name"
	FavoriteSortPrice FavoriteSort = "price"
)

// IsValid reports whether s is known. The empty value counts as date.
func (s FavoriteSort) IsValid() bool {
	switch s {
	case "", FavoriteSortDate, FavoriteSortName, FavoriteSortPrice:
		return true
	}
	return false
}

// SignInRequest is the body of a sign-in call
//
// swagger:model
type SignInRequest struct {
	// required: true
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=128"`
}

// AddFavoriteRequest is the body of a favorite call
//
// swagger:model
type AddFavoriteRequest struct {
	// required: true
	ProductID string `json:"productId" validate:"required"`
}
