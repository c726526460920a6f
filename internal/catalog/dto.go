package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/montluxe/storefront/pkg/db/models"
)

// ProductDTO is the catalog listing shape served to storefront clients.
type ProductDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	PriceCents   int64     `json:"price_cents"`
	Price        string    `json:"price"`
	ItemQuantity int       `json:"item_quantity"`
	ImageURL     string    `json:"image_url"`
	ImageAlt     *string   `json:"image_alt,omitempty"`
	Href         string    `json:"href"`
	Categories   []string  `json:"categories,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryDTO describes a navigation category.
type CategoryDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductListResult wraps a page of products. NextCursor is empty on the
// final page.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// CategoryListResult wraps the category collection.
type CategoryListResult struct {
	Categories []CategoryDTO `json:"categories"`
}

// DisplayPrice renders cents as a dollar amount with two decimal places.
func DisplayPrice(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func productFromModel(p *models.Product) ProductDTO {
	categories := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, c.Name)
	}

	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PriceCents:   p.PriceCents,
		Price:        DisplayPrice(p.PriceCents),
		ItemQuantity: p.ItemQuantity,
		ImageURL:     p.ImageURL,
		ImageAlt:     p.ImageAlt,
		Href:         p.Href,
		Categories:   categories,
		CreatedAt:    p.CreatedAt,
	}
}

func categoryFromModel(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}
