package migration

import (
	"context"
	"fmt"

	"foodgram/entities"
	"foodgram/pkg/logger"

	"gorm.io/gorm"
)

// Migrate creates the uuid extension and brings every table up to date.
// Join tables come after the tables they reference.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"subscription", &entities.Subscription{}},
		{"ingredient", &entities.Ingredient{}},
		{"tag", &entities.Tag{}},
		{"recipe", &entities.Recipe{}},
		{"ingredient in recipe", &entities.IngredientInRecipe{}},
		{"favorite", &entities.Favorite{}},
		{"shopping cart", &entities.ShoppingCart{}},
	}
	for _, m := range models {
		if err := db.WithContext(ctx).AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrate %s table: %w", m.name, err)
		}
	}

	logger.Log(ctx).Info(ctx, "database migration complete")
	return nil
}
