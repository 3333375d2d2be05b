package seed

import "github.com/example/storefront/pkg/models"

// CategorySeed is one sample category; Slug is the natural dedup key.
type CategorySeed struct {
	Title       string
	Slug        string
	Description string
	ImagePath   string
}

// ProductSeed is one sample product. SalePrice zero means no sale price.
// CategorySlug is resolved against the store at create time.
type ProductSeed struct {
	Title        string
	Slug         string
	Price        float64
	SalePrice    float64
	Description  string
	Stock        int
	Status       models.ProductStatus
	CategorySlug string
	ImagePaths   []string
}

var SampleCategories = []CategorySeed{
	{
		Title:       "Electronics",
		Slug:        "electronics",
		Description: "Latest gadgets, devices, and electronic accessories for modern living.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Clothing",
		Slug:        "clothing",
		Description: "Fashionable apparel and accessories for every style and occasion.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Home & Garden",
		Slug:        "home-garden",
		Description: "Everything you need to make your home beautiful and your garden flourish.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Sports & Outdoors",
		Slug:        "sports-outdoors",
		Description: "Gear and equipment for your active lifestyle and outdoor adventures.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Books & Media",
		Slug:        "books-media",
		Description: "Books, movies, music, and digital media for entertainment and learning.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Health & Beauty",
		Slug:        "health-beauty",
		Description: "Products for your wellness, skincare, and personal care needs.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Automotive",
		Slug:        "automotive",
		Description: "Car parts, accessories, and maintenance products for your vehicle.",
		ImagePath:   "cat.jpg",
	},
	{
		Title:       "Toys & Games",
		Slug:        "toys-games",
		Description: "Fun toys, games, and entertainment for all ages.",
		ImagePath:   "cat.jpg",
	},
}

var SampleProducts = []ProductSeed{
	{
		Title:        "Wireless Bluetooth Headphones",
		Slug:         "wireless-bluetooth-headphones",
		Price:        89.99,
		SalePrice:    79.99,
		Description:  "High-quality wireless Bluetooth headphones with noise cancellation and premium sound quality.",
		Stock:        25,
		Status:       models.StatusActive,
		CategorySlug: "electronics",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Smartphone Stand",
		Slug:         "smartphone-stand",
		Price:        19.99,
		Description:  "Adjustable smartphone stand perfect for video calls, watching videos, or following recipes.",
		Stock:        50,
		Status:       models.StatusActive,
		CategorySlug: "electronics",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Cotton T-Shirt",
		Slug:         "cotton-t-shirt",
		Price:        24.99,
		SalePrice:    19.99,
		Description:  "Comfortable 100% cotton t-shirt available in multiple colors and sizes.",
		Stock:        100,
		Status:       models.StatusActive,
		CategorySlug: "clothing",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Denim Jeans",
		Slug:         "denim-jeans",
		Price:        79.99,
		Description:  "Classic denim jeans with a comfortable fit and durable construction.",
		Stock:        30,
		Status:       models.StatusActive,
		CategorySlug: "clothing",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Ceramic Plant Pot",
		Slug:         "ceramic-plant-pot",
		Price:        34.99,
		Description:  "Beautiful ceramic plant pot perfect for indoor plants and decoration.",
		Stock:        20,
		Status:       models.StatusActive,
		CategorySlug: "home-garden",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Garden Hose 50ft",
		Slug:         "garden-hose-50ft",
		Price:        29.99,
		Description:  "Durable garden hose perfect for watering plants and garden maintenance.",
		Stock:        15,
		Status:       models.StatusActive,
		CategorySlug: "home-garden",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Yoga Mat",
		Slug:         "yoga-mat",
		Price:        39.99,
		SalePrice:    34.99,
		Description:  "Non-slip yoga mat with excellent cushioning for comfortable workouts.",
		Stock:        40,
		Status:       models.StatusActive,
		CategorySlug: "sports-outdoors",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Water Bottle 32oz",
		Slug:         "water-bottle-32oz",
		Price:        16.99,
		Description:  "Insulated water bottle that keeps drinks cold for 24 hours or hot for 12 hours.",
		Stock:        60,
		Status:       models.StatusActive,
		CategorySlug: "sports-outdoors",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Programming Guide",
		Slug:         "programming-guide",
		Price:        49.99,
		Description:  "Comprehensive programming guide for beginners and intermediate developers.",
		Stock:        10,
		Status:       models.StatusActive,
		CategorySlug: "books-media",
		ImagePaths:   []string{"cat.jpg"},
	},
	{
		Title:        "Natural Face Cream",
		Slug:         "natural-face-cream",
		Price:        24.99,
		Description:  "Natural face cream made with organic ingredients for healthy, glowing skin.",
		Stock:        35,
		Status:       models.StatusActive,
		CategorySlug: "health-beauty",
		ImagePaths:   []string{"cat.jpg"},
	},
}
