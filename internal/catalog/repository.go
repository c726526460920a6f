package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/montluxe/storefront/internal/repo"
	"github.com/montluxe/storefront/pkg/db/models"
	"github.com/montluxe/storefront/pkg/pagination"
)

// Repository provides read access to the product catalog.
type Repository struct {
	repo.Base
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListProducts returns one page of catalog listings in insertion order,
// optionally filtered by category name. The limit should include the
// look-ahead row used for next-page detection.
func (r *Repository) ListProducts(ctx context.Context, categoryName string, cursor *pagination.Cursor, limit int) ([]models.Product, error) {
	query := r.DB(ctx).
		Preload("Categories").
		Order("products.created_at ASC, products.id ASC").
		Limit(limit)

	if categoryName != "" {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.name = ?", categoryName)
	}
	if cursor != nil {
		query = query.Where(
			"(products.created_at, products.id) > (?, ?)",
			cursor.CreatedAt, cursor.ID,
		)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductByID loads one product with its categories.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
