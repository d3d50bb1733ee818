package domain

// Product is owned by the remote document store; this system only reads it.
// The gorm tags exist solely for the local development catalog.
type Product struct {
	ID            string   `json:"id" firestore:"-" gorm:"primaryKey"`
	Title         string   `json:"title" firestore:"title"`
	Description   string   `json:"description" firestore:"description"`
	Category      string   `json:"category" firestore:"category"`
	Price         float64  `json:"price" firestore:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" firestore:"originalPrice"`
	Rating        float64  `json:"rating" firestore:"rating"`
	Image         string   `json:"image" firestore:"image"`
	Images        []string `json:"images,omitempty" firestore:"images" gorm:"serializer:json"`
	InStock       bool     `json:"inStock" firestore:"inStock"`
}
