// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ColorVariant is one purchasable colorway of a product. The image URLs are
// ordered; the first one is the listing thumbnail.
type ColorVariant struct {
	Name   string   // Display name of the colorway, e.g. "BLACK".
	Hex    string   // CSS hex value used by the storefront swatch.
	Images []string // Ordered image URLs for this colorway.
}

// Product is a catalog entry. Stock is the shared available-inventory
// counter; it is only ever adjusted through ProductRepository's conditional
// stock operations so that concurrent checkouts cannot oversell.
type Product struct {
	ID          uuid.UUID      // The unique identifier of the product.
	Name        string         // Display name.
	Slug        string         // URL-safe unique identifier, e.g. "core-hoodie-black".
	Description string         // Long-form product description.
	Price       int64          // Unit price in minor currency units (e.g. cents).
	Category    string         // Top-level category, e.g. "hoodies".
	SubCategory string         // Optional second-level category.
	Sizes       []string       // Available sizes, e.g. ["S","M","L"].
	Colors      []ColorVariant // Available colorways with their image sets.
	Stock       int            // Available inventory count, never negative.
	DropCode    int            // Release wave this product belongs to (0 = none).
	Bestseller  bool           // Flag surfaced on the storefront home page.
	CreatedAt   time.Time      // Timestamp of catalog creation.
	UpdatedAt   time.Time      // Timestamp of the last modification.
}

// HasSize reports whether the product is sold in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

// HasColor reports whether the product is sold in the given colorway.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c.Name == color {
			return true
		}
	}

	return false
}

// PrimaryImage returns the thumbnail for the given colorway, falling back to
// the first image of the first colorway when the color is unknown.
func (p *Product) PrimaryImage(color string) string {
	for _, c := range p.Colors {
		if c.Name == color && len(c.Images) > 0 {
			return c.Images[0]
		}
	}
	if len(p.Colors) > 0 && len(p.Colors[0].Images) > 0 {
		return p.Colors[0].Images[0]
	}

	return ""
}
