package domain

// Product represents a read-only catalog listing
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// example: 1
	ID string `json:"id" validate:"required"`

	// The name of the product
	//
	// required: true
	// example: iPhone 15 Pro
	Name string `json:"name" validate:"required"`

	// The manufacturer of the product
	//
	// required: true
	// example: Apple
	Brand string `json:"brand" validate:"required"`

	// The category of the product
	//
	// required: true
	// example: Smartphones
	Category string `json:"category" validate:"required"`

	// The description of the product
	//
	// required: false
	Description string `json:"description"`

	// The current price of the product
	//
	// required: true
	// min: 0
	// example: 24999
	Price float64 `json:"price" validate:"gte=0"`

	// The ISO-like currency code of the price
	//
	// required: true
	// example: ZAR
	Currency string `json:"currency" validate:"required,len=3"`

	// The price before discount, only present when a discount applies
	//
	// required: false
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`

	// The average rating, between 0 and 5
	//
	// required: true
	// example: 4.8
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`

	// The number of reviews behind the rating
	//
	// required: true
	// example: 1250
	ReviewCount int `json:"reviewCount" validate:"gte=0"`

	// The product image URL
	//
	// required: false
	Image string `json:"image,omitempty" validate:"omitempty,url"`

	// Short feature bullet points
	//
	// required: false
	Features []string `json:"features"`

	// Whether the product is in stock
	//
	// required: true
	InStock bool `json:"inStock"`

	// The discount percentage
	//
	// required: false
	Discount *int `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Display badges
	//
	// required: false
	Badges []string `json:"badges,omitempty"`

	// The retailer selling the product
	//
	// required: true
	// example: iStore
	Store string `json:"store" validate:"required"`

	// The retailer URL
	//
	// required: false
	StoreURL string `json:"storeUrl" validate:"omitempty,url"`

	// Whether the retailer is local
	//
	// required: true
	IsLocal bool `json:"isLocal"`
}

// Clone returns a deep copy so callers can never mutate catalog records
func (p Product) Clone() Product {
	c := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		c.OriginalPrice = &v
	}
	if p.Discount != nil {
		v := *p.Discount
		c.Discount = &v
	}
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	if p.Badges != nil {
		c.Badges = append([]string(nil), p.Badges...)
	}
	return c
}

// Products is a collection of Product
type Products []Product
