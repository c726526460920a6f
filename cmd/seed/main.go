package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/montluxe/storefront/pkg/config"
	"github.com/montluxe/storefront/pkg/db"
	"github.com/montluxe/storefront/pkg/db/models"
	"github.com/montluxe/storefront/pkg/logger"
)

type seedProduct struct {
	name       string
	priceCents int64
	quantity   int
	imageAlt   string
	categories []string
}

var seedProducts = []seedProduct{
	{
		name:       "Alpine Elegance",
		priceCents: 129999,
		quantity:   18,
		imageAlt:   "Sophisticated Alpine Elegance watch showcasing Swiss craftsmanship.",
		categories: []string{"Genesis"},
	},
	{
		name:       "Horologe Elegance Alpine",
		priceCents: 88500,
		quantity:   24,
		imageAlt:   "The Horologe Elegance Alpine watch blends tradition with alpine scenery.",
		categories: []string{"Elite"},
	},
	{
		name:       "Pastoral Reflection",
		priceCents: 64900,
		quantity:   40,
		imageAlt:   "The Pastoral Reflection watch, where time meets the tranquility of nature.",
		categories: []string{"Genesis"},
	},
	{
		name:       "Urban Allegory",
		priceCents: 97500,
		quantity:   12,
		imageAlt:   "Urban Allegory, a watch that embodies the spirit of the metropolis.",
		categories: []string{"Elite"},
	},
	{
		name:       "Haute Society",
		priceCents: 155000,
		quantity:   6,
		imageAlt:   "Haute Society, the watch that epitomizes the zenith of luxury.",
		categories: []string{"Genesis"},
	},
	{
		name:       "Alpine Precision",
		priceCents: 72000,
		quantity:   31,
		imageAlt:   "Alpine Precision, a watch that defines accuracy and Swiss elegance.",
		categories: []string{"Elite"},
	},
	{
		name:       "Alpine Enforcer",
		priceCents: 113000,
		quantity:   15,
		imageAlt:   "The Alpine Enforcer watch, robustness and precision in one piece.",
		categories: []string{"Genesis", "Elite"},
	},
	{
		name:       "Urban Reflection",
		priceCents: 58500,
		quantity:   44,
		imageAlt:   "Urban Reflection, the essence of city life on your wrist.",
		categories: []string{"Genesis", "Elite"},
	},
	{
		name:       "Velocity Visionary",
		priceCents: 139500,
		quantity:   9,
		imageAlt:   "Velocity Visionary, where speed and vision meet sophistication.",
		categories: []string{"Genesis", "Elite"},
	},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		for _, item := range seedProducts {
			categories, err := ensureCategories(tx, item.categories)
			if err != nil {
				return fmt.Errorf("ensure categories for %s: %w", item.name, err)
			}

			alt := item.imageAlt
			product := models.Product{
				Name:         item.name,
				PriceCents:   item.priceCents,
				ItemQuantity: item.quantity,
				ImageURL:     "assets/images/" + slugify(item.name) + ".png",
				ImageAlt:     &alt,
				Href:         "/products/" + slugify(item.name),
				Categories:   categories,
			}

			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&product).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", item.name, err)
			}
		}
		return nil
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "database seeded successfully")
}

func ensureCategories(tx *gorm.DB, names []string) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		var cat models.Category
		if err := tx.Where("name = ?", name).FirstOrCreate(&cat, models.Category{Name: name}).Error; err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
