package entity

// Collection is a top-level catalog grouping; products live in its
// subcollection.
type Collection struct {
	ID   string `json:"id" firestore:"-"`
	Name string `json:"name" firestore:"name"`
}

type Product struct {
	ID              string `json:"id" firestore:"-"`
	Name            string `json:"name" firestore:"name"`
	Image           string `json:"image" firestore:"image"`
	Price           string `json:"price" firestore:"price"`
	Sizes           string `json:"sizes" firestore:"sizes"`
	Material        string `json:"material,omitempty" firestore:"material,omitempty"`
	CollectionID    string `json:"collection_id,omitempty" firestore:"-"`
	DiscountPercent int    `json:"discount_percent,omitempty" firestore:"discountPercent,omitempty"`
	OriginalPrice   int64  `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
}
