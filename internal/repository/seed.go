package repository

import "github.com/kahvecikaan/techpulse/internal/domain"

func float(v float64) *float64 { return &v }
func integer(v int) *int       { return &v }

func defaultCatalog() domain.Products {
	return domain.Products{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Category:    "Smartphones",
			Description: "Latest iPhone with Pro camera system",
			Price:       24999,
			Currency:    "ZAR",
			Rating:      4.8,
			ReviewCount: 1250,
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300",
			Features:    []string{"A17 Pro chip", "48MP main camera", "Titanium design", "USB-C"},
			InStock:     true,
			Badges:      []string{"Bestseller"},
			Store:       "iStore",
			StoreURL:    "https://www.istore.co.za",
			IsLocal:     true,
		},
		{
			ID:            "2",
			Name:          "Samsung Galaxy S24 Ultra",
			Brand:         "Samsung",
			Category:      "Smartphones",
			Description:   "Premium Android flagship with S Pen",
			Price:         26999,
			Currency:      "ZAR",
			OriginalPrice: float(29999),
			Discount:      integer(10),
			Rating:        4.7,
			ReviewCount:   980,
			Image:         "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=300",
			Features:      []string{"200MP camera", "Built-in S Pen", "5000mAh battery"},
			InStock:       true,
			Store:         "Incredible Connection",
			StoreURL:      "https://www.incredible.co.za",
			IsLocal:       true,
		},
		{
			ID:          "3",
			Name:        "MacBook Pro 14\" M3",
			Brand:       "Apple",
			Category:    "Laptops",
			Description: "Professional laptop with M3 chip",
			Price:       45999,
			Currency:    "ZAR",
			Rating:      4.9,
			ReviewCount: 750,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=300",
			Features:    []string{"Apple M3 chip", "Liquid Retina XDR display", "22-hour battery life"},
			InStock:     true,
			Store:       "iStore",
			StoreURL:    "https://www.istore.co.za",
			IsLocal:     true,
		},
		{
			ID:          "4",
			Name:        "Dell XPS 15",
			Brand:       "Dell",
			Category:    "Laptops",
			Description: "High-performance ultrabook",
			Price:       35999,
			Currency:    "ZAR",
			Rating:      4.6,
			ReviewCount: 420,
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300",
			Features:    []string{"OLED display", "Intel Core i7", "32GB RAM"},
			InStock:     true,
			Store:       "Evetech",
			StoreURL:    "https://www.evetech.co.za",
			IsLocal:     true,
		},
		{
			ID:          "5",
			Name:        "Sony WH-1000XM5",
			Brand:       "Sony",
			Category:    "Headphones",
			Description: "Premium noise-cancelling headphones",
			Price:       7999,
			Currency:    "ZAR",
			Rating:      4.8,
			ReviewCount: 890,
			Image:       "https://images.unsplash.com/photo-1484704849700-f032a568e944?w=300",
			Features:    []string{"Industry-leading noise cancellation", "30-hour battery", "Multipoint pairing"},
			InStock:     true,
			Store:       "Incredible Connection",
			StoreURL:    "https://www.incredible.co.za",
			IsLocal:     true,
		},
		{
			ID:          "6",
			Name:        "LG 27\" 4K Monitor",
			Brand:       "LG",
			Category:    "Monitors",
			Description: "4K UHD monitor for professionals",
			Price:       8999,
			Currency:    "ZAR",
			Rating:      4.5,
			ReviewCount: 320,
			Image:       "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=300",
			Features:    []string{"27-inch IPS panel", "HDR10", "USB-C with 65W charging"},
			InStock:     true,
			Store:       "Evetech",
			StoreURL:    "https://www.evetech.co.za",
			IsLocal:     true,
		},
		{
			ID:          "7",
			Name:        "NVIDIA RTX 4080",
			Brand:       "NVIDIA",
			Category:    "PC Parts",
			Description: "High-end graphics card for gaming",
			Price:       22999,
			Currency:    "ZAR",
			Rating:      4.9,
			ReviewCount: 650,
			Image:       "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=300",
			Features:    []string{"16GB GDDR6X", "DLSS 3", "Ray tracing"},
			InStock:     false,
			Store:       "Evetech",
			StoreURL:    "https://www.evetech.co.za",
			IsLocal:     true,
		},
		{
			ID:          "8",
			Name:        "iPad Pro 12.9\"",
			Brand:       "Apple",
			Category:    "Tablets",
			Description: "Professional tablet with M2 chip",
			Price:       19999,
			Currency:    "ZAR",
			Rating:      4.7,
			ReviewCount: 540,
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=300",
			Features:    []string{"Apple M2 chip", "Apple Pencil support", "Digital art ready"},
			InStock:     true,
			Store:       "iStore",
			StoreURL:    "https://www.istore.co.za",
			IsLocal:     true,
		},
		{
			ID:            "9",
			Name:          "Samsung Galaxy A14 5G",
			Brand:         "Samsung",
			Category:      "Smartphones",
			Description:   "Affordable 5G smartphone with a large display",
			Price:         3999,
			Currency:      "ZAR",
			OriginalPrice: float(4499),
			Discount:      integer(11),
			Rating:        4.3,
			ReviewCount:   610,
			Image:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300",
			Features:      []string{"6.6-inch display", "5000mAh battery", "50MP camera"},
			InStock:       true,
			Badges:        []string{"Budget pick"},
			Store:         "Takealot",
			StoreURL:      "https://www.takealot.com",
			IsLocal:       true,
		},
		{
			ID:          "10",
			Name:        "Acer Aspire 3",
			Brand:       "Acer",
			Category:    "Laptops",
			Description: "Budget laptop for study and home office",
			Price:       4999,
			Currency:    "ZAR",
			Rating:      4.1,
			ReviewCount: 310,
			Image:       "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=300",
			Features:    []string{"15.6-inch Full HD", "Intel Core i3", "8GB RAM"},
			InStock:     true,
			Store:       "Takealot",
			StoreURL:    "https://www.takealot.com",
			IsLocal:     true,
		},
		{
			ID:          "11",
			Name:        "Sony WH-1000XM5",
			Brand:       "Sony",
			Category:    "Headphones",
			Description: "Premium noise-cancelling headphones",
			Price:       399,
			Currency:    "USD",
			Rating:      4.8,
			ReviewCount: 890,
			Image:       "https://images.unsplash.com/photo-1484704849700-f032a568e944?w=300",
			Features:    []string{"Industry-leading noise cancellation", "30-hour battery", "Multipoint pairing"},
			InStock:     true,
			Store:       "Amazon",
			StoreURL:    "https://www.amazon.com",
			IsLocal:     false,
		},
		{
			ID:          "12",
			Name:        "Logitech MX Keys",
			Brand:       "Logitech",
			Category:    "Keyboards",
			Description: "Wireless illuminated keyboard for productivity",
			Price:       119,
			Currency:    "USD",
			Rating:      4.6,
			ReviewCount: 2100,
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=300",
			Features:    []string{"Backlit keys", "Multi-device", "USB-C rechargeable"},
			InStock:     true,
			Store:       "Amazon",
			StoreURL:    "https://www.amazon.com",
			IsLocal:     false,
		},
	}
}
