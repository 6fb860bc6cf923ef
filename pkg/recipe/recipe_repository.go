package recipe

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]*entities.Recipe, int64, error)
		IsNameTaken(ctx context.Context, name string, excludeID string) (bool, error)

		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error)

		AddToShoppingCart(ctx context.Context, userID, recipeID string) error
		RemoveFromShoppingCart(ctx context.Context, userID, recipeID string) error
		GetInCartIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error)
		GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe inserts the recipe, its ingredient rows and its tag links in
// one transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		return writeRecipeLinks(tx, recipe, tags, ingredients)
	})
}

// UpdateRecipe saves the recipe fields and replaces every ingredient row and
// tag link with the given ones.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.IngredientInRecipe{}).Error; err != nil {
			return err
		}
		return writeRecipeLinks(tx, recipe, tags, ingredients)
	})
}

func writeRecipeLinks(tx *gorm.DB, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	for _, ingredient := range ingredients {
		ingredient.RecipeID = recipe.ID
		if ingredient.ID == uuid.Nil {
			ingredient.ID = uuid.New()
		}
	}
	if len(ingredients) > 0 {
		if err := tx.Omit(clause.Associations).Create(&ingredients).Error; err != nil {
			return err
		}
	}

	return tx.Model(recipe).Association("Tags").Replace(tags)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := &entities.Recipe{}
		if err := tx.Where("id = ?", id).First(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withRecipeRelations(r.db.WithContext(ctx)).
		Where("recipes.id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.applyFilter(ctx, r.db.WithContext(ctx).Model(&entities.Recipe{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := withRecipeRelations(r.applyFilter(ctx, r.db.WithContext(ctx), filter)).
		Offset(page.Offset()).
		Limit(page.Limit).
		Order("recipes.pub_date desc, recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// applyFilter narrows the recipes by tag slug (any of), author and, for a known
// user, favorites and shopping cart membership.
func (r *recipeRepository) applyFilter(ctx context.Context, query *gorm.DB, filter domain.RecipeFilter) *gorm.DB {
	db := r.db.WithContext(ctx)
	if len(filter.Tags) > 0 {
		query = query.Where("recipes.id IN (?)", db.
			Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.Tags))
	}
	if filter.AuthorID != "" {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.UserID == "" {
		return query
	}
	if filter.IsFavorited {
		query = query.Where("recipes.id IN (?)", db.
			Model(&entities.Favorite{}).
			Select("recipe_id").
			Where("user_id = ?", filter.UserID))
	}
	if filter.IsInShoppingCart {
		query = query.Where("recipes.id IN (?)", db.
			Model(&entities.ShoppingCart{}).
			Select("recipe_id").
			Where("user_id = ?", filter.UserID))
	}
	return query
}

func withRecipeRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name asc")
		}).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepository) IsNameTaken(ctx context.Context, name string, excludeID string) (bool, error) {
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, recipeUUID, err := parseIDs(userID, recipeID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&entities.Favorite{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
	}).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return r.removeLink(ctx, &entities.Favorite{}, userID, recipeID)
}

func (r *recipeRepository) GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	return r.linkedIDs(ctx, &entities.Favorite{}, userID, recipeIDs)
}

func (r *recipeRepository) AddToShoppingCart(ctx context.Context, userID, recipeID string) error {
	userUUID, recipeUUID, err := parseIDs(userID, recipeID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&entities.ShoppingCart{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
	}).Error
}

func (r *recipeRepository) RemoveFromShoppingCart(ctx context.Context, userID, recipeID string) error {
	return r.removeLink(ctx, &entities.ShoppingCart{}, userID, recipeID)
}

func (r *recipeRepository) GetInCartIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	return r.linkedIDs(ctx, &entities.ShoppingCart{}, userID, recipeIDs)
}

// GetShoppingList sums the ingredient amounts over every recipe in the user's
// cart, one row per ingredient name and unit.
func (r *recipeRepository) GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem

	if err := r.db.WithContext(ctx).
		Table("shopping_carts").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_in_recipes.amount) AS total_amount").
		Joins("JOIN ingredient_in_recipes ON ingredient_in_recipes.recipe_id = shopping_carts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = ingredient_in_recipes.ingredient_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name asc, ingredients.measurement_unit asc").
		Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *recipeRepository) removeLink(ctx context.Context, model any, userID, recipeID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) linkedIDs(ctx context.Context, model any, userID string, recipeIDs []string) (map[string]bool, error) {
	res := make(map[string]bool, len(recipeIDs))
	if userID == "" || len(recipeIDs) == 0 {
		return res, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

func parseIDs(userID, recipeID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	return userUUID, recipeUUID, nil
}
