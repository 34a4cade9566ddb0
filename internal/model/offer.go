package model

import "time"

// Offer is a time-bound discount attached to exactly one provider.
type Offer struct {
	ID              string    `db:"id" json:"id"`
	ProviderID      string    `db:"provider_id" json:"providerId"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	Price           float64   `db:"price" json:"price"`
	OriginalPrice   float64   `db:"original_price" json:"originalPrice"`
	DiscountedPrice float64   `db:"discounted_price" json:"discountedPrice"`
	Duration        int       `db:"duration" json:"duration"`
	Category        string    `db:"category" json:"category"`
	Subcategory     string    `db:"subcategory" json:"subcategory"`
	Image           *string   `db:"image" json:"image,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
