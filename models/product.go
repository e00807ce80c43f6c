// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is a catalogue entry.
type Product struct {
	ProductID   int64  `json:"id"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// PriceCents is the price in the smallest currency unit.
	PriceCents int64 `json:"price_cents"`

	// ImageID and ImageURL are copied from the upload registry when the
	// product is saved. The catalogue does not track the registry afterwards.
	ImageID  string `json:"image_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductInput is the create/update request body for products.
type ProductInput struct {
	CategoryID  *int64 `json:"category_id" validate:"omitempty,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=4000"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	ImageID     string `json:"image_id" validate:"omitempty,len=32,hexadecimal"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *int64
	Limit      uint64
	Offset     uint64
}

// Category groups products.
type Category struct {
	CategoryID int64     `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryInput is the create/update request body for categories.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}
