package entities

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

// Deleting a user or a recipe must take every dependent row with it.
func TestForeignKeysCascadeOnDelete(t *testing.T) {
	tests := []struct {
		model    any
		relation string
		table    string
		refTable string
	}{
		{&User{}, "Recipes", "recipes", "users"},
		{&Recipe{}, "Ingredients", "ingredient_in_recipes", "recipes"},
		{&IngredientInRecipe{}, "Ingredient", "ingredient_in_recipes", "ingredients"},
		{&Favorite{}, "Recipe", "favorites", "recipes"},
		{&Favorite{}, "User", "favorites", "users"},
		{&ShoppingCart{}, "Recipe", "shopping_carts", "recipes"},
		{&ShoppingCart{}, "User", "shopping_carts", "users"},
		{&Subscription{}, "Author", "subscriptions", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.table+"."+tt.relation, func(t *testing.T) {
			rel, ok := parseSchema(t, tt.model).Relationships.Relations[tt.relation]
			require.True(t, ok)

			constraint := rel.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.table, constraint.Schema.Table)
			assert.Equal(t, tt.refTable, constraint.ReferenceSchema.Table)
			assert.Equal(t, "CASCADE", constraint.OnDelete)
		})
	}
}

func TestCheckConstraints(t *testing.T) {
	tests := []struct {
		model any
		name  string
		sql   string
	}{
		{&Tag{}, "chk_tag_color", "color ~ '^#([A-Fa-f0-9]{3}){1,2}$'"},
		{&Recipe{}, "chk_recipe_cooking_time", "cooking_time >= 1 AND cooking_time <= 1000"},
		{&IngredientInRecipe{}, "chk_ingredient_amount", "amount >= 1 AND amount <= 10000"},
		{&Subscription{}, "self_subscription_denied", "user_id <> author_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := parseSchema(t, tt.model).ParseCheckConstraints()
			require.Contains(t, checks, tt.name)
			assert.Equal(t, tt.sql, checks[tt.name].Constraint)
		})
	}
}
