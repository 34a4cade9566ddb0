package model

import "time"

// Provider is a business listing in the directory. OwnerID is nil for
// admin-created listings that were never claimed by an account.
type Provider struct {
	ID           string       `db:"id" json:"id"`
	OwnerID      *string      `db:"user_id" json:"userId,omitempty"`
	Name         string       `db:"name" json:"name"`
	Username     string       `db:"username" json:"username"`
	City         string       `db:"city" json:"city"`
	ZipCode      *string      `db:"zip_code" json:"zipCode,omitempty"`
	Location     *string      `db:"location" json:"location,omitempty"`
	Phone        *string      `db:"phone" json:"phone,omitempty"`
	Email        *string      `db:"email" json:"email,omitempty"`
	Website      *string      `db:"website" json:"website,omitempty"`
	Description  *string      `db:"description" json:"description,omitempty"`
	Images       ImageList    `db:"images" json:"images"`
	OpeningHours OpeningHours `db:"opening_hours" json:"openingHours"`
	Category     string       `db:"category" json:"category"`
	Subcategory  string       `db:"subcategory" json:"subcategory"`
	Address      *string      `db:"address" json:"address,omitempty"`
	IsFeatured   bool         `db:"is_featured" json:"isFeatured"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
}
